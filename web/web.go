package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"
	"yatube/auth"
	"yatube/forms"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Templates parses all page templates, gin renders them by file name (e.g. "index.tmpl")
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("2 January 2006")
		},
		"media": func(path string) string {
			return "/media/" + path
		},
		"fieldError": func(verr *forms.ValidationError, field string) string {
			if verr == nil {
				return ""
			}
			return verr.Message(field)
		},
		"str": func(id uint64) string {
			return strconv.FormatUint(id, 10)
		},
	}).ParseFS(templateFiles, "templates/*.tmpl"))
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["user"] = auth.CurrentUser(c)
	c.HTML(status, name, data)
}

func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
}

func serverError(c *gin.Context, err error) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	render(c, http.StatusInternalServerError, "500.tmpl", nil)
}

// handleError responds with 404 for missing records and 500 for everything else
func handleError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		NotFound(c)
		return
	}
	serverError(c, err)
}

func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	if post, err = models.PostByID(id); err != nil {
		handleError(c, err)
		return
	}
	return post, true
}

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}

func profileURL(username string) string {
	return "/profile/" + username + "/"
}
