package auth

import (
	"net/http"
	"net/url"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// User is authenticated and posseses the required permissions
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading
type Router struct {
	Base gin.IRoutes
	// Denied responds to requests without a user or permissions, RedirectToLogin by default
	Denied gin.HandlerFunc
}

// RedirectToLogin sends the visitor to the login page, coming back here afterwards
func RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
}

func DenyJSON(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []models.Permission) {
	user := CurrentUser(c)
	if user.ID == 0 || !user.HasPermissions(required) {
		if cr.Denied != nil {
			cr.Denied(c)
		} else {
			RedirectToLogin(c)
		}
		c.Abort()
		return
	}
	handler(c, user)
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

// Form registers the handler for both showing (GET) and submitting (POST) a form
func (cr *Router) Form(path string, handler HandlerFunc, required ...models.Permission) {
	cr.GET(path, handler, required...)
	cr.POST(path, handler, required...)
}
