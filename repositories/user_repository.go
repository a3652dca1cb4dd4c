package repositories

import (
	"errors"
	"fmt"

	"blogly/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	List() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("last_name").Order("first_name").Find(&users).Error
	return users, err
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts", newestFirst).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Omit("Posts").Create(user).Error
}

func (r *userRepository) Update(user *models.User) error {
	res := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"image_url":  user.ImageURL,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", user.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the user, its posts and their join rows in one transaction.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if err := deleteJoinRows(tx, "post_id", postIDs); err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %d: %w", id, models.ErrNotFound)
		}
		return nil
	})
}
