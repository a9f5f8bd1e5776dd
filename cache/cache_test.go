package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestCache(ttl time.Duration) (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(ttl)
	c.Now = clock.Now
	return c, clock
}

func TestMemoryCacheExpiry(t *testing.T) {
	c, clock := newTestCache(20 * time.Second)
	c.Set("/", Entry{Body: []byte("page")})

	entry, ok := c.Get("/")
	require.True(t, ok)
	require.Equal(t, http.StatusOK, entry.Status)
	require.Equal(t, "page", string(entry.Body))

	clock.now = clock.now.Add(19 * time.Second)
	_, ok = c.Get("/")
	require.True(t, ok)

	clock.now = clock.now.Add(time.Second)
	_, ok = c.Get("/")
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestMemoryCacheBounded(t *testing.T) {
	c, clock := newTestCache(20 * time.Second)
	c.MaxEntries = 100
	for i := 0; i < 10000; i++ {
		c.Set(fmt.Sprintf("/?page=1&x=%d", i), Entry{Body: []byte("page")})
		require.LessOrEqual(t, c.Len(), c.MaxEntries)
	}
	_, ok := c.Get("/?page=1&x=9999")
	require.True(t, ok)

	clock.now = clock.now.Add(time.Hour)
	c.Set("/", Entry{Body: []byte("home")})
	require.Equal(t, 1, c.Len())
}

func TestMemoryCacheEvictsClosestToExpiry(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		keys    []string
		dropped []string
	}{
		{"below limit", 3, []string{"/a", "/b", "/c"}, nil},
		{"oldest dropped", 2, []string{"/a", "/b", "/c"}, []string{"/a"}},
		{"replacing keeps others", 2, []string{"/a", "/b", "/b"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(time.Minute)
			c.MaxEntries = tt.max
			for _, key := range tt.keys {
				c.Set(key, Entry{Body: []byte(key)})
				clock.now = clock.now.Add(time.Second)
			}
			for _, key := range tt.keys {
				_, ok := c.Get(key)
				require.Equal(t, !lo.Contains(tt.dropped, key), ok, key)
			}
		})
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("/", Entry{Body: []byte("a")})
	c.Set("/?page=2", Entry{Body: []byte("b")})
	require.Equal(t, 2, c.Len())
	c.Clear()
	_, ok := c.Get("/")
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestPageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, clock := newTestCache(20 * time.Second)
	renders := 0
	router := gin.New()
	router.GET("/", Page(c, RouteKey), func(ctx *gin.Context) {
		renders++
		ctx.String(http.StatusOK, "render %d", renders)
	})
	router.GET("/missing", Page(c, RouteKey), func(ctx *gin.Context) {
		renders++
		ctx.String(http.StatusNotFound, "nope")
	})
	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	first := get("/")
	require.Equal(t, "render 1", first.Body.String())
	cached := get("/")
	require.Equal(t, http.StatusOK, cached.Code)
	require.Equal(t, first.Body.String(), cached.Body.String())
	require.Equal(t, first.Header().Get("Content-Type"), cached.Header().Get("Content-Type"))

	// the query string is part of the key
	require.Equal(t, "render 2", get("/?page=2").Body.String())

	clock.now = clock.now.Add(21 * time.Second)
	require.Equal(t, "render 3", get("/").Body.String())
	c.Clear()
	require.Equal(t, "render 4", get("/").Body.String())

	// only successful pages are kept
	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusNotFound, get("/missing").Code)
	}
	require.Equal(t, 6, renders)
	_, ok := c.Get("/missing")
	require.False(t, ok)
}
