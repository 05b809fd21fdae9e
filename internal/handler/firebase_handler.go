package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/framelight/internal/auth"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type idTokenPayload struct {
	IDToken string `json:"idToken"`
}

// FirebaseLogin exchanges a Firebase ID token for a server session.
func (a *API) FirebaseLogin(c *gin.Context) {
	var payload idTokenPayload
	if !bindJSON(c, &payload, "Invalid JSON data") {
		return
	}
	if strings.TrimSpace(payload.IDToken) == "" {
		respondError(c, http.StatusBadRequest, "No identity token provided")
		return
	}

	user, err := a.auth.Authenticate(c.Request.Context(), payload.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			respondError(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		log.Printf("firebase login error: %v", err)
		respondError(c, http.StatusInternalServerError, "An error occurred during authentication")
		return
	}

	if err := loginSession(c, user); err != nil {
		log.Printf("firebase login session error: %v", err)
		respondError(c, http.StatusInternalServerError, "An error occurred during authentication")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Authentication successful",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

// FirebaseLogout ends the session.
func (a *API) FirebaseLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("logout error: %v", err)
		respondError(c, http.StatusInternalServerError, "An error occurred during logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// VerifyToken checks an ID token without creating a session.
func (a *API) VerifyToken(c *gin.Context) {
	var payload idTokenPayload
	if !bindJSON(c, &payload, "Invalid JSON data") {
		return
	}
	if strings.TrimSpace(payload.IDToken) == "" {
		respondError(c, http.StatusBadRequest, "No identity token provided")
		return
	}

	claims, err := a.verifier.Verify(c.Request.Context(), payload.IDToken)
	if err != nil {
		log.Printf("token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid": false,
			"error": "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"uid":   claims.Subject,
		"email": claims.Email,
		"name":  claims.Name,
	})
}

// CurrentUser reports the authenticated user, if any.
func (a *API) CurrentUser(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}
