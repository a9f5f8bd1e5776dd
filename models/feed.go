package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

// Every feed is ordered newest first. The id breaks ties between posts created at the same instant.
func postsQuery() *gorm.DB {
	return db.Instance.Model(&Post{}).Order("posts.created_at DESC").Order("posts.id DESC")
}

// WithRelations preloads what the feed templates render next to a post
func WithRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author").Preload("Group")
}

func AllPostsQuery() *gorm.DB {
	return postsQuery()
}

func GroupPostsQuery(slug string) (Group, *gorm.DB, error) {
	group, err := GroupBySlug(slug)
	if err != nil {
		return group, nil, err
	}
	return group, postsQuery().Where("posts.group_id = ?", group.ID), nil
}

func AuthorPostsQuery(username string) (User, *gorm.DB, error) {
	author, err := UserByUsername(username)
	if err != nil {
		return author, nil, err
	}
	return author, postsQuery().Where("posts.author_id = ?", author.ID), nil
}

// FollowedPostsQuery selects posts of every author followerID follows
func FollowedPostsQuery(followerID uint64) *gorm.DB {
	return postsQuery().
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", followerID)
}

func listPosts(tx *gorm.DB) (posts []Post, err error) {
	err = WithRelations(tx).Find(&posts).Error
	return
}

func ListAll() ([]Post, error) {
	return listPosts(AllPostsQuery())
}

func ListByGroup(slug string) ([]Post, error) {
	_, tx, err := GroupPostsQuery(slug)
	if err != nil {
		return nil, err
	}
	return listPosts(tx)
}

func ListByAuthor(username string) ([]Post, error) {
	_, tx, err := AuthorPostsQuery(username)
	if err != nil {
		return nil, err
	}
	return listPosts(tx)
}

func ListFollowedFeed(followerID uint64) ([]Post, error) {
	return listPosts(FollowedPostsQuery(followerID))
}
