package models

// DefaultImageURL is stored for users created or edited without an image.
const DefaultImageURL = "https://images.app.goo.gl/pwHVKVwAh6t97iU99"

type User struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	FirstName string `json:"first_name" gorm:"type:text;not null"`
	LastName  string `json:"last_name" gorm:"type:text;not null"`
	ImageURL  string `json:"image_url" gorm:"type:text;not null;default:'https://images.app.goo.gl/pwHVKVwAh6t97iU99'"`
	Posts     []Post `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
