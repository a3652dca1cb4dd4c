package services

import (
	"strings"

	"blogly/models"
	"blogly/repositories"
)

type TagService interface {
	ListTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	CreateTag(form models.TagForm) (*models.Tag, error)
	UpdateTag(id uint, form models.TagForm) (*models.Tag, error)
	DeleteTag(id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo  repositories.TagRepository
	postRepo repositories.PostRepository
}

func NewTagService(tagRepo repositories.TagRepository, postRepo repositories.PostRepository) TagService {
	return &tagService{
		tagRepo:  tagRepo,
		postRepo: postRepo,
	}
}

func (s *tagService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.List()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

// CreateTag does not look for an existing tag with the same name first; the
// unique index on tags.name is what rejects duplicates.
func (s *tagService) CreateTag(form models.TagForm) (*models.Tag, error) {
	posts, err := s.postRepo.ListByIDs(form.Posts)
	if err != nil {
		return nil, err
	}

	tag := &models.Tag{
		Name:  strings.TrimSpace(form.Name),
		Posts: posts,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(id uint, form models.TagForm) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByIDs(form.Posts)
	if err != nil {
		return nil, err
	}

	tag.Name = strings.TrimSpace(form.Name)
	tag.Posts = posts

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) DeleteTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.tagRepo.Delete(id); err != nil {
		return nil, err
	}
	return tag, nil
}
