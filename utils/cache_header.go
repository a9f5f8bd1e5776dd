package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const CacheNoCache = 0

// CacheHeader sets Cache-Control for every response of the route group.
// A zero maxAge means "no-cache", anything else lets the browser keep its private copy.
func CacheHeader(maxAge time.Duration) gin.HandlerFunc {
	value := "no-cache"
	if maxAge > CacheNoCache {
		value = "private, max-age=" + strconv.Itoa(int(maxAge/time.Second))
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
