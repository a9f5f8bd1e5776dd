package web

import (
	"strings"
	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// Media serves uploaded post images
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	media := storage.GetDefaultStorage()
	if path == "" || !media.Exists(path) {
		NotFound(c)
		return
	}
	media.Serve(path, c.Request, c.Writer)
}
