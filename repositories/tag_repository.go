package repositories

import (
	"errors"
	"fmt"

	"blogly/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	List() ([]models.Tag, error)
	ListByIDs(ids []uint) ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	Delete(id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Scopes(byName).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) ListByIDs(ids []uint) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Scopes(byName).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Preload("Posts", newestFirst).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tag %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create inserts the tag and one join row per entry of tag.Posts. A duplicate
// name is rejected by the unique index and returned as the driver's error.
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Posts").Create(tag).Error; err != nil {
			return err
		}
		return replaceTagPosts(tx, tag.ID, tag.Posts)
	})
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tag{}).Where("id = ?", tag.ID).Update("name", tag.Name)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tag %d: %w", tag.ID, models.ErrNotFound)
		}
		return replaceTagPosts(tx, tag.ID, tag.Posts)
	})
}

// Delete removes the tag's join rows and then the tag. Posts are kept.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, "tag_id", []uint{id}); err != nil {
			return err
		}
		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tag %d: %w", id, models.ErrNotFound)
		}
		return nil
	})
}
