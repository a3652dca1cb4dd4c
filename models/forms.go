package models

import "strings"

type UserForm struct {
	FirstName string `form:"first_name" binding:"required,notblank"`
	LastName  string `form:"last_name" binding:"required,notblank"`
	ImageURL  string `form:"image_url"`
}

// Normalize trims every field and falls back to DefaultImageURL.
func (f *UserForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	if f.ImageURL == "" {
		f.ImageURL = DefaultImageURL
	}
}

type PostForm struct {
	Title   string `form:"title" binding:"required,notblank"`
	Content string `form:"content" binding:"required,notblank"`
	Tags    []uint `form:"tags"`
}

type TagForm struct {
	Name  string `form:"name" binding:"required,notblank"`
	Posts []uint `form:"posts"`
}

// Selected turns a submitted id list into a lookup set for re-rendering checkboxes.
func Selected(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
