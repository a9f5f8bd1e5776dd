package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		err    error
		status int
		body   Response
		logged bool
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound, NotFoundResponse, false},
		{"wrapped not found", fmt.Errorf("post 7: %w", models.ErrNotFound), http.StatusNotFound, NotFoundResponse, false},
		{"db failure", errors.New("connection reset"), http.StatusInternalServerError, DBErrorResponse, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := zerolog.New(&logs)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/posts/delete", nil)
			c.Request = req.WithContext(logger.WithContext(req.Context()))

			respondError(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			require.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.body.Error), w.Body.String())
			if tt.logged {
				require.Contains(t, logs.String(), "connection reset")
				require.Contains(t, logs.String(), "/api/admin/posts/delete")
			} else {
				require.Empty(t, logs.String())
			}
		})
	}
}
