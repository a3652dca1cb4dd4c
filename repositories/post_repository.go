package repositories

import (
	"errors"
	"fmt"

	"blogly/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	List() ([]models.Post, error)
	ListRecent(limit int) ([]models.Post, error)
	ListByIDs(ids []uint) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("title").Order("id").Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").
		Scopes(newestFirst).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByIDs(ids []uint) ([]models.Post, error) {
	posts := []models.Post{}
	if len(ids) == 0 {
		return posts, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id").Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").
		Preload("Tags", byName).
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("post %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and one join row per entry of post.Tags.
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "Tags").Create(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, post.Tags)
	})
}

// Update overwrites title and content and replaces the whole tag set.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post %d: %w", post.ID, models.ErrNotFound)
		}
		return replacePostTags(tx, post.ID, post.Tags)
	})
}

// Delete removes the post's join rows and then the post. Tags are kept.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, "post_id", []uint{id}); err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post %d: %w", id, models.ErrNotFound)
		}
		return nil
	})
}
