package models

import (
	"time"
	"yatube/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime:nano"`
	PostID    uint64 `gorm:"not null;index:comment_post"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text;not null"`
}

func (c Comment) Created() time.Time {
	return time.Unix(0, c.CreatedAt)
}

func CreateComment(c *Comment) error {
	return db.Instance.Omit("Post", "Author").Create(c).Error
}

// ListComments returns the comments of a post, oldest first
func ListComments(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	return
}

func CountComments() (count int64, err error) {
	err = db.Instance.Model(&Comment{}).Count(&count).Error
	return
}
