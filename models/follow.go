package models

import (
	"yatube/db"
)

// Follow is a directed edge: User receives Author's posts in their follow feed
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;index:uniq_follow,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;index:uniq_follow,priority:2,unique;index:follow_author"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor makes sure the edge exists. Following yourself is silently ignored.
func FollowAuthor(followerID, authorID uint64) error {
	if followerID == authorID {
		return nil
	}
	follow := Follow{UserID: followerID, AuthorID: authorID}
	err := db.Instance.Where(&follow).Omit("User", "Author").FirstOrCreate(&follow).Error
	if err != nil {
		// A concurrent request may have created the same edge in between
		if following, _ := IsFollowing(followerID, authorID); following {
			return nil
		}
	}
	return err
}

// UnfollowAuthor deletes the edge if there is one
func UnfollowAuthor(followerID, authorID uint64) error {
	return db.Instance.Where("user_id = ? AND author_id = ?", followerID, authorID).Delete(&Follow{}).Error
}

// UnfollowUsername is UnfollowAuthor for an author known by username only. Unknown usernames are a no-op.
func UnfollowUsername(followerID uint64, username string) error {
	authorIDs := db.Instance.Model(&User{}).Select("id").Where("username = ?", username)
	return db.Instance.Where("user_id = ? AND author_id IN (?)", followerID, authorIDs).Delete(&Follow{}).Error
}

func IsFollowing(followerID, authorID uint64) (bool, error) {
	var count int64
	err := db.Instance.Model(&Follow{}).Where("user_id = ? AND author_id = ?", followerID, authorID).Count(&count).Error
	return count > 0, err
}

func CountFollowers(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return
}

func CountFollowing(followerID uint64) (count int64, err error) {
	err = db.Instance.Model(&Follow{}).Where("user_id = ?", followerID).Count(&count).Error
	return
}
