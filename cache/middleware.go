package cache

import (
	"bytes"
	"net/http"
	"yatube/metrics"

	"github.com/gin-gonic/gin"
)

// KeyFunc derives the cache key of a request
type KeyFunc func(c *gin.Context) string

// RouteKey is the route and the query string, e.g. "/?page=2".
// The home page does not use it alone: its key also carries the session user id,
// so every logged in visitor gets their own copy and anonymous visitors share one.
func RouteKey(c *gin.Context) string {
	return c.Request.URL.RequestURI()
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Page serves GET requests from the cache when possible and stores successful renders.
// Pages are shared by everyone whose requests map to the same key, see RouteKey.
func Page(store PageCache, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		k := key(c)
		if entry, ok := store.Get(k); ok {
			metrics.PageCacheRequests.WithLabelValues("hit").Inc()
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		metrics.PageCacheRequests.WithLabelValues("miss").Inc()
		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		c.Writer = writer.ResponseWriter

		if writer.Status() == http.StatusOK && !c.IsAborted() {
			store.Set(k, Entry{
				Status:      http.StatusOK,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        bytes.Clone(writer.body.Bytes()),
			})
		}
	}
}
