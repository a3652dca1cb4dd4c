package models

// PostTag is a row of the posts_tags join table. Its existence is the association.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

func (PostTag) TableName() string {
	return "posts_tags"
}
