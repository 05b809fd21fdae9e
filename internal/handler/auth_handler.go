package handler

import (
	"net/http"

	"github.com/framelight/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the client login page. Authenticated users are
// sent straight to their galleries.
func (a *API) ShowLoginPage(c *gin.Context) {
	if _, ok := a.currentUser(c); ok {
		c.Redirect(http.StatusFound, "/gallery")
		return
	}

	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title":  "Client Login",
		"errors": takeFlashes(c, "error"),
	})
}

// Login authenticates a local username/password pair.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":  "Client Login",
			"errors": []string{"Invalid username or password."},
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":  "Client Login",
			"errors": []string{"Invalid username or password."},
		})
		return
	}

	if err := loginSession(c, &user); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title":  "Client Login",
			"errors": []string{"Could not save your session, please try again."},
		})
		return
	}

	c.Redirect(http.StatusFound, "/gallery")
}

// Logout clears the session and returns to the homepage.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// AuthRequired redirects unauthenticated requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionKeyUserID) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffRequired rejects non-staff sessions with a flash redirect home.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isStaff, _ := session.Get(sessionKeyIsStaff).(bool)
		if !isStaff {
			addFlash(c, "error", "Access denied. Staff only.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
