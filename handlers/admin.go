package handlers

import (
	"net/http"
	"yatube/cache"
	"yatube/models"
	"yatube/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

type StatusResponse struct {
	Users     int64  `json:"users"`
	Groups    int    `json:"groups"`
	Posts     int64  `json:"posts"`
	Comments  int64  `json:"comments"`
	CacheSize int    `json:"cache_size"`
	FreeSpace uint64 `json:"free_space"`
}

// PostDelete removes any post together with its comments and media
func PostDelete(c *gin.Context, user *models.User) {
	r := IDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := models.DeletePost(r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	storage.DeleteImage(storage.GetDefaultStorage(), post.Image, post.Thumb)
	zerolog.Ctx(c.Request.Context()).Info().Uint64("id", post.ID).Stringer("post", post).Str("by", user.Username).Msg("Post deleted")
	c.JSON(http.StatusOK, OKResponse)
}

// UserDelete removes the account with everything it authored or follows
func UserDelete(c *gin.Context, user *models.User) {
	r := IDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.ID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete own account"})
		return
	}
	target, err := models.UserByID(r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	posts, err := models.ListByAuthor(target.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = models.DeleteUser(target.ID); err != nil {
		respondError(c, err)
		return
	}
	media := storage.GetDefaultStorage()
	for _, p := range posts {
		storage.DeleteImage(media, p.Image, p.Thumb)
	}
	zerolog.Ctx(c.Request.Context()).Info().Str("username", target.Username).Int("posts", len(posts)).Str("by", user.Username).Msg("User deleted")
	c.JSON(http.StatusOK, OKResponse)
}

// CacheClear drops every cached page so the next request renders fresh
func CacheClear(pc cache.PageCache) func(c *gin.Context, user *models.User) {
	return func(c *gin.Context, user *models.User) {
		pc.Clear()
		zerolog.Ctx(c.Request.Context()).Info().Str("by", user.Username).Msg("Page cache cleared")
		c.JSON(http.StatusOK, OKResponse)
	}
}

func Status(pc cache.PageCache) func(c *gin.Context, user *models.User) {
	return func(c *gin.Context, user *models.User) {
		var (
			r   StatusResponse
			err error
		)
		if r.Users, err = models.CountUsers(); err != nil {
			respondError(c, err)
			return
		}
		groups, err := models.ListGroups()
		if err != nil {
			respondError(c, err)
			return
		}
		r.Groups = len(groups)
		if r.Posts, err = models.CountPosts(); err != nil {
			respondError(c, err)
			return
		}
		if r.Comments, err = models.CountComments(); err != nil {
			respondError(c, err)
			return
		}
		if sized, ok := pc.(interface{ Len() int }); ok {
			r.CacheSize = sized.Len()
		}
		r.FreeSpace = storage.GetDefaultStorage().GetFreeSpace()
		c.JSON(http.StatusOK, r)
	}
}
