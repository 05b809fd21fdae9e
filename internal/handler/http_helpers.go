package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/framelight/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUserID  = "user_id"
	sessionKeyIsStaff = "is_staff"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// galleryAccessKey names the session marker set after a correct
// gallery password. Markers persist for the life of the session.
func galleryAccessKey(galleryID uint) string {
	return fmt.Sprintf("gallery_%d_access", galleryID)
}

// loginSession records the authenticated user in the session.
func loginSession(c *gin.Context, user *db.User) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyIsStaff, user.IsStaff)
	return session.Save()
}

// currentUser resolves the session's user record, if any.
func (a *API) currentUser(c *gin.Context) (*db.User, bool) {
	session := sessions.Default(c)
	raw := session.Get(sessionKeyUserID)
	userID, ok := raw.(uint)
	if !ok {
		return nil, false
	}

	var user db.User
	if err := a.db.First(&user, userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		c.Error(err)
	}
}

func takeFlashes(c *gin.Context, kind string) []string {
	session := sessions.Default(c)
	raw := session.Flashes(kind)
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			c.Error(err)
		}
	}

	messages := make([]string, 0, len(raw))
	for _, item := range raw {
		if text, ok := item.(string); ok {
			messages = append(messages, text)
		}
	}
	return messages
}
