package web

import (
	"errors"
	"net/http"
	"strings"
	"yatube/auth"
	"yatube/forms"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// safeNext only allows redirects within the site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func Login(c *gin.Context) {
	next := c.DefaultQuery("next", c.PostForm("next"))
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "login.tmpl", gin.H{"next": next, "username": "", "error": ""})
		return
	}
	username := strings.TrimSpace(c.PostForm("username"))
	user, err := models.UserLogin(username, c.PostForm("password"))
	if errors.Is(err, models.ErrInvalidCredentials) {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"next":     next,
			"username": username,
			"error":    "Please enter a correct username and password.",
		})
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, safeNext(next))
}

func Logout(c *gin.Context) {
	if err := auth.LoadSession(c).LogoutUser(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": forms.SignupFields{}})
		return
	}
	fields := forms.SignupFields{
		Username: c.PostForm("username"),
		Name:     c.PostForm("name"),
		Password: c.PostForm("password"),
	}
	record, err := forms.ValidateSignup(fields)
	if verr, ok := forms.AsValidationError(err); ok {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": fields, "errors": verr})
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	user, err := models.UserCreate(record.Username, record.Name, record.Password)
	if errors.Is(err, models.ErrUsernameTaken) {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": fields, "errors": forms.UsernameTaken()})
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
