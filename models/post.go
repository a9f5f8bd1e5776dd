package models

import (
	"time"
	"yatube/db"

	"gorm.io/gorm"
)

const postStringLength = 15

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime:nano;index:post_created"` // nanoseconds, default ordering
	UpdatedAt int64
	Text      string `gorm:"type:text;not null"`
	AuthorID  uint64 `gorm:"not null;index:post_author"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index:post_group"` // can be null
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Image     string  `gorm:"type:varchar(300)"` // storage path, e.g. posts/cat.jpg
	Thumb     string  `gorm:"type:varchar(300)"`
}

// String is the beginning of the text, as shown in logs and the admin API
func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > postStringLength {
		runes = runes[:postStringLength]
	}
	return string(runes)
}

func (p Post) Created() time.Time {
	return time.Unix(0, p.CreatedAt)
}

func (p Post) HasGroup() bool {
	return p.GroupID != nil && p.Group != nil
}

func CreatePost(p *Post) error {
	return db.Instance.Create(p).Error
}

func PostByID(id uint64) (p Post, err error) {
	err = WithRelations(db.Instance).First(&p, id).Error
	return p, notFound(err, "post", id)
}

// UpdatePost replaces the editable fields wholesale, author and creation time stay as they are
func UpdatePost(p *Post) error {
	return db.Instance.Model(p).Select("text", "group_id", "image", "thumb").Updates(p).Error
}

// DeletePost deletes the post together with its comments
func DeletePost(id uint64) (p Post, err error) {
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return notFound(err, "post", id)
		}
		if err := tx.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	return
}

func CountPostsByAuthor(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return
}

func CountPosts() (count int64, err error) {
	err = db.Instance.Model(&Post{}).Count(&count).Error
	return
}
