package handlers

import (
	"errors"
	"net/http"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GroupSaveRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Slug        string `json:"slug" form:"slug" binding:"required,max=50"`
	Description string `json:"description" form:"description"`
}

func groupInfo(g models.Group) GroupInfo {
	return GroupInfo{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func GroupList(c *gin.Context, user *models.User) {
	groups, err := models.ListGroups()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(groups, func(g models.Group, _ int) GroupInfo {
		return groupInfo(g)
	}))
}

// GroupCreate creates a group, or updates the one with the same slug
func GroupCreate(c *gin.Context, user *models.User) {
	r := GroupSaveRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := models.SaveGroup(r.Title, r.Slug, r.Description)
	if errors.Is(err, models.ErrInvalidSlug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		respondError(c, err)
		return
	}
	zerolog.Ctx(c.Request.Context()).Info().Str("slug", group.Slug).Str("by", user.Username).Msg("Group saved")
	c.JSON(http.StatusOK, groupInfo(group))
}

// GroupDelete removes the group, its posts stay without one
func GroupDelete(c *gin.Context, user *models.User) {
	r := IDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.DeleteGroup(r.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
