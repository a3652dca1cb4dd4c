package models

import "time"

const friendlyDateLayout = "Mon Jan 2 2006, 3:04 PM"

type Post struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Tags      []Tag     `json:"tags" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

// FriendlyDate formats CreatedAt for display, e.g. "Tue Mar 5 2024, 4:07 PM".
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format(friendlyDateLayout)
}

// TagIDs returns the set of tag ids currently attached to the post.
func (p Post) TagIDs() map[uint]bool {
	ids := make(map[uint]bool, len(p.Tags))
	for _, tag := range p.Tags {
		ids[tag.ID] = true
	}
	return ids
}
