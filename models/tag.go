package models

type Tag struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

func (t Tag) PostIDs() map[uint]bool {
	ids := make(map[uint]bool, len(t.Posts))
	for _, post := range t.Posts {
		ids[post.ID] = true
	}
	return ids
}
