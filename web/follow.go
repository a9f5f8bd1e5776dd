package web

import (
	"net/http"
	"yatube/metrics"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const followIndexPath = "/follow/"

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	if author.ID != user.ID {
		if err = models.FollowAuthor(user.ID, author.ID); err != nil {
			serverError(c, err)
			return
		}
		metrics.RecordsCreated.WithLabelValues("follow").Inc()
		zerolog.Ctx(c.Request.Context()).Debug().Str("follower", user.Username).Str("author", author.Username).Msg("Follow")
	}
	c.Redirect(http.StatusFound, followIndexPath)
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	if err := models.UnfollowUsername(user.ID, c.Param("username")); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, followIndexPath)
}
