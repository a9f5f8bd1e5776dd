package web

import (
	"net/http"
	"yatube/auth"
	"yatube/models"
	"yatube/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func postsPage(c *gin.Context, tx *gorm.DB) (pagination.Page[models.Post], error) {
	return pagination.PaginateQuery[models.Post](tx, pagination.PageSize, c.Query("page"), models.WithRelations)
}

// Index is the global feed
func Index(c *gin.Context) {
	page, err := postsPage(c, models.AllPostsQuery())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"page": page})
}

func GroupPosts(c *gin.Context) {
	group, tx, err := models.GroupPostsQuery(c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	page, err := postsPage(c, tx)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{
		"group": group,
		"page":  page,
	})
}

func Profile(c *gin.Context) {
	author, tx, err := models.AuthorPostsQuery(c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	page, err := postsPage(c, tx)
	if err != nil {
		serverError(c, err)
		return
	}
	user := auth.CurrentUser(c)
	following := false
	if user.ID != 0 {
		if following, err = models.IsFollowing(user.ID, author.ID); err != nil {
			serverError(c, err)
			return
		}
	}
	followers, err := models.CountFollowers(author.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	follows, err := models.CountFollowing(author.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":          author,
		"page":            page,
		"following":       following,
		"can_follow":      user.ID != 0 && user.ID != author.ID,
		"followers_count": followers,
		"following_count": follows,
	})
}

// FollowIndex is the feed of the authors the user follows
func FollowIndex(c *gin.Context, user *models.User) {
	page, err := postsPage(c, models.FollowedPostsQuery(user.ID))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{
		"page":      page,
		"is_follow": true,
	})
}
