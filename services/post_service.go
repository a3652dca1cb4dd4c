package services

import (
	"strings"
	"time"

	"blogly/models"
	"blogly/repositories"
)

type PostService interface {
	ListPosts() ([]models.Post, error)
	ListRecentPosts(limit int) ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(userID uint, form models.PostForm) (*models.Post, error)
	UpdatePost(id uint, form models.PostForm) (*models.Post, error)
	DeletePost(id uint) (*models.Post, error)
}

type postService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
	now      func() time.Time
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, tagRepo repositories.TagRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
		now:      time.Now,
	}
}

func (s *postService) ListPosts() ([]models.Post, error) {
	return s.postRepo.List()
}

func (s *postService) ListRecentPosts(limit int) ([]models.Post, error) {
	return s.postRepo.ListRecent(limit)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

func (s *postService) CreatePost(userID uint, form models.PostForm) (*models.Post, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	// Unknown tag ids are dropped
	tags, err := s.tagRepo.ListByIDs(form.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     strings.TrimSpace(form.Title),
		Content:   strings.TrimSpace(form.Content),
		CreatedAt: s.now(),
		UserID:    user.ID,
		Tags:      tags,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	post.User = *user
	return post, nil
}

func (s *postService) UpdatePost(id uint, form models.PostForm) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByIDs(form.Tags)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(form.Title)
	post.Content = strings.TrimSpace(form.Content)
	post.Tags = tags

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return nil, err
	}
	return post, nil
}
