package commands

import (
	"fmt"
	"time"

	"blogly/models"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all rows with sample users, posts and tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}

		counts, err := Seed(db, time.Now())
		if err != nil {
			return err
		}

		Success("Seeded %d users, %d posts and %d tags", counts.Users, counts.Posts, counts.Tags)
		Muted("  %s", describeDB(cfg.Database))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type SeedCounts struct {
	Users, Posts, Tags int
}

type seedPost struct {
	title, content string
	tags           []string
}

var seedUsers = []struct {
	first, last, image string
	posts              []seedPost
}{
	{"Alan", "Alda", "", []seedPost{
		{"First Post!", "Oh, hai.", []string{"fun"}},
		{"Yet Another Post", "Still here.", []string{"fun", "even more"}},
	}},
	{"Joel", "Burton", "https://avatars.githubusercontent.com/u/1?v=4", []seedPost{
		{"Flask Is Awesome", "Routing and templates in one afternoon.", []string{"bloop", "zope"}},
	}},
	{"Jane", "Smith", "", nil},
}

// Seed empties every table and inserts the sample data. Posts are stamped a
// minute apart, oldest first, ending at now.
func Seed(db *gorm.DB, now time.Time) (SeedCounts, error) {
	var counts SeedCounts

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.PostTag{}, &models.Post{}, &models.Tag{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}

		var total int
		for _, u := range seedUsers {
			total += len(u.posts)
		}
		stamp := now.Add(-time.Duration(total-1) * time.Minute)

		tags := map[string]*models.Tag{}
		for _, u := range seedUsers {
			form := models.UserForm{FirstName: u.first, LastName: u.last, ImageURL: u.image}
			form.Normalize()
			user := models.User{FirstName: form.FirstName, LastName: form.LastName, ImageURL: form.ImageURL}
			if err := tx.Omit("Posts").Create(&user).Error; err != nil {
				return err
			}
			counts.Users++

			for _, p := range u.posts {
				post := models.Post{Title: p.title, Content: p.content, UserID: user.ID, CreatedAt: stamp}
				stamp = stamp.Add(time.Minute)
				if err := tx.Omit("User", "Tags").Create(&post).Error; err != nil {
					return err
				}
				counts.Posts++

				for _, name := range p.tags {
					tag, ok := tags[name]
					if !ok {
						tag = &models.Tag{Name: name}
						if err := tx.Omit("Posts").Create(tag).Error; err != nil {
							return err
						}
						tags[name] = tag
						counts.Tags++
					}
					if err := tx.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})

	return counts, err
}
