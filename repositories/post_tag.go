package repositories

import (
	"blogly/models"

	"gorm.io/gorm"
)

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc").Order("id desc")
}

func byName(db *gorm.DB) *gorm.DB {
	return db.Order("name")
}

// deleteJoinRows removes every posts_tags row whose column value is in ids.
func deleteJoinRows(tx *gorm.DB, column string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Where(column+" IN ?", ids).Delete(&models.PostTag{}).Error
}

func insertJoinRows(tx *gorm.DB, rows []models.PostTag) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// replacePostTags makes the post's tag set exactly tags.
func replacePostTags(tx *gorm.DB, postID uint, tags []models.Tag) error {
	if err := deleteJoinRows(tx, "post_id", []uint{postID}); err != nil {
		return err
	}
	rows := make([]models.PostTag, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, models.PostTag{PostID: postID, TagID: tag.ID})
	}
	return insertJoinRows(tx, rows)
}

// replaceTagPosts makes the tag's post set exactly posts.
func replaceTagPosts(tx *gorm.DB, tagID uint, posts []models.Post) error {
	if err := deleteJoinRows(tx, "tag_id", []uint{tagID}); err != nil {
		return err
	}
	rows := make([]models.PostTag, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, models.PostTag{PostID: post.ID, TagID: tagID})
	}
	return insertJoinRows(tx, rows)
}
