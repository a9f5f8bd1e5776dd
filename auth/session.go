package auth

import (
	"yatube/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey      = "id"
	contextUserKey = "user"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) error {
	s.Clear()
	s.Set(userIdKey, user.ID)
	return s.Save()
}

func (s *Session) LogoutUser() error {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

func (s *Session) UserID() uint64 {
	id, _ := s.Get(userIdKey).(uint64)
	return id
}

func (s *Session) User() (user models.User) {
	id := s.UserID()
	if id == 0 {
		return
	}
	user, err := models.UserByID(id)
	if err != nil {
		return models.User{}
	}
	return
}

// CurrentUser loads the logged in user once per request, ID is 0 for anonymous visitors
func CurrentUser(c *gin.Context) *models.User {
	if user, ok := c.Get(contextUserKey); ok {
		return user.(*models.User)
	}
	user := LoadSession(c).User()
	c.Set(contextUserKey, &user)
	return &user
}
