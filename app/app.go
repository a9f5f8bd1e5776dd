// Package app assembles the HTTP router: middlewares, the HTML site and the admin API.
package app

import (
	"strconv"
	"time"
	"yatube/auth"
	"yatube/cache"
	"yatube/handlers"
	"yatube/metrics"
	"yatube/models"
	"yatube/utils"
	"yatube/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "sessionid"

type Options struct {
	// Cache keeps rendered home feed pages, see cache.Page
	Cache        cache.PageCache
	CacheMaxAge  time.Duration
	SessionStore sessions.Store
	// Middlewares run after logging and before sessions, e.g. gzip or cors
	Middlewares []gin.HandlerFunc
}

// indexCacheKey is cache.RouteKey plus the session user id.
// The page shows the visitor's own menu, so one cached copy is kept per visitor and anonymous visitors share theirs.
func indexCacheKey(c *gin.Context) string {
	return cache.RouteKey(c) + "#" + strconv.FormatUint(auth.LoadSession(c).UserID(), 10)
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies([]string{})
	router.SetHTMLTemplate(web.Templates())
	router.Use(gin.Recovery(), utils.RequestLogger, metrics.Middleware)
	router.Use(opts.Middlewares...)
	router.Use(sessions.Sessions(SessionCookieName, opts.SessionStore))
	router.Use(utils.CacheHeader(utils.CacheNoCache)) // individual routes can override that

	// Public pages
	router.GET("/", utils.CacheHeader(opts.CacheMaxAge), cache.Page(opts.Cache, indexCacheKey), web.Index)
	router.GET("/group/:slug/", web.GroupPosts)
	router.GET("/profile/:username/", web.Profile)
	router.GET("/posts/:id/", web.PostDetail)
	router.GET("/media/*path", web.Media)
	// Accounts
	router.GET(auth.LoginPath, web.Login)
	router.POST(auth.LoginPath, web.Login)
	router.GET("/auth/signup/", web.Signup)
	router.POST("/auth/signup/", web.Signup)
	router.GET("/auth/logout/", web.Logout)
	router.POST("/auth/logout/", web.Logout)

	// Pages for logged in users, anonymous visitors are sent to the login page
	userRouter := &auth.Router{Base: router}
	userRouter.Form("/create/", web.PostCreate)
	userRouter.Form("/posts/:id/edit/", web.PostEdit)
	userRouter.POST("/posts/:id/delete/", web.PostDelete)
	userRouter.POST("/posts/:id/comment/", web.AddComment)
	userRouter.GET("/follow/", web.FollowIndex)
	userRouter.GET("/profile/:username/follow/", web.ProfileFollow)
	userRouter.GET("/profile/:username/unfollow/", web.ProfileUnfollow)

	// Admin API
	adminRouter := &auth.Router{Base: router.Group("/admin"), Denied: auth.DenyJSON}
	adminRouter.GET("/groups", handlers.GroupList, models.PermissionAdmin)
	adminRouter.POST("/group/create", handlers.GroupCreate, models.PermissionAdmin)
	adminRouter.POST("/group/delete", handlers.GroupDelete, models.PermissionAdmin)
	adminRouter.POST("/post/delete", handlers.PostDelete, models.PermissionAdmin)
	adminRouter.POST("/user/delete", handlers.UserDelete, models.PermissionAdmin)
	adminRouter.POST("/cache/clear", handlers.CacheClear(opts.Cache), models.PermissionAdmin)
	adminRouter.GET("/status", handlers.Status(opts.Cache), models.PermissionAdmin)

	router.GET("/metrics", metrics.Handler())
	router.NoRoute(web.NotFound)
	return router
}
