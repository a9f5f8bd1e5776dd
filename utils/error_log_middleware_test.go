package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestErrorLogMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	previous, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&logs)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})

	router := gin.New()
	router.Use(ErrorLogMiddleware)
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	router.GET("/missing", func(c *gin.Context) { c.String(http.StatusNotFound, "no such post") })
	router.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
	})

	tests := []struct {
		path   string
		status int
		body   string
		logged bool
	}{
		{"/ok", http.StatusOK, "fine", false},
		{"/missing", http.StatusNotFound, "no such post", true},
		{"/broken", http.StatusInternalServerError, "DB error", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			logs.Reset()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, w.Code)
			require.Contains(t, w.Body.String(), tt.body)
			if !tt.logged {
				require.Empty(t, logs.String())
				return
			}
			require.Contains(t, logs.String(), "Error response")
			require.Contains(t, logs.String(), tt.path)
			require.Contains(t, logs.String(), tt.body)
		})
	}
}
