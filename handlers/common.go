package handlers

import (
	"errors"
	"net/http"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Response struct {
	Error string `json:"error"`
}

// IDRequest is the body of every admin delete call
type IDRequest struct {
	ID uint64 `json:"id" form:"id" binding:"required"`
}

var (
	// Predefined responses
	OKResponse       = Response{}
	NotFoundResponse = Response{"not found"}
	DBErrorResponse  = Response{"DB error"}
)

// respondError maps model errors to a status code, details go to the log only
func respondError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Admin request failed")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, DBErrorResponse)
}
