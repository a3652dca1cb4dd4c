package services

import (
	"blogly/models"
	"blogly/repositories"
)

type UserService interface {
	ListUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	CreateUser(form models.UserForm) (*models.User, error)
	UpdateUser(id uint, form models.UserForm) (*models.User, error)
	DeleteUser(id uint) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) CreateUser(form models.UserForm) (*models.User, error) {
	form.Normalize()

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		ImageURL:  form.ImageURL,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id uint, form models.UserForm) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	form.Normalize()
	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.ImageURL = form.ImageURL

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user with all of its posts and returns what was removed.
func (s *userService) DeleteUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}
