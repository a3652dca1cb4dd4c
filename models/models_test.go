package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	assert.Equal(t, "Harry Potter", User{FirstName: "Harry", LastName: "Potter"}.FullName())
}

func TestFriendlyDate(t *testing.T) {
	post := Post{CreatedAt: time.Date(2024, time.March, 5, 16, 7, 0, 0, time.UTC)}
	assert.Equal(t, "Tue Mar 5 2024, 4:07 PM", post.FriendlyDate())
}

func TestUserFormNormalize(t *testing.T) {
	form := UserForm{FirstName: "  Harry ", LastName: "Potter", ImageURL: "   "}
	form.Normalize()

	assert.Equal(t, "Harry", form.FirstName)
	assert.Equal(t, DefaultImageURL, form.ImageURL)

	form = UserForm{FirstName: "Harry", LastName: "Potter", ImageURL: "https://example.com/h.png"}
	form.Normalize()
	assert.Equal(t, "https://example.com/h.png", form.ImageURL)
}

func TestTagAndPostIDSets(t *testing.T) {
	post := Post{Tags: []Tag{{ID: 1}, {ID: 3}}}
	assert.Equal(t, map[uint]bool{1: true, 3: true}, post.TagIDs())

	tag := Tag{Posts: []Post{{ID: 7}}}
	assert.Equal(t, map[uint]bool{7: true}, tag.PostIDs())

	assert.Equal(t, map[uint]bool{2: true, 5: true}, Selected([]uint{2, 5, 2}))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title":   "title is a required field",
		"content": "content is a required field",
	}}
	assert.Equal(t, "validation failed: content: content is a required field; title: title is a required field", err.Error())
}
