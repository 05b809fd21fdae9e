package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/framelight/internal/db"
	"github.com/framelight/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowDashboard renders the staff overview of galleries, clients and
// contact inquiries.
func (a *API) ShowDashboard(c *gin.Context) {
	var galleries []db.Gallery
	if err := a.db.Preload("ClientProfile.User").
		Order("created_at desc").
		Find(&galleries).Error; err != nil {
		log.Printf("dashboard galleries failed: %v", err)
	}

	var clients []db.ClientProfile
	if err := a.db.Preload("User").Find(&clients).Error; err != nil {
		log.Printf("dashboard clients failed: %v", err)
	}

	messages, err := a.contacts.List()
	if err != nil {
		log.Printf("dashboard messages failed: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":     "Dashboard",
		"galleries": galleries,
		"clients":   clients,
		"inquiries": messages,
	})
}

// ToggleMessageRead flips the read flag on a contact message.
func (a *API) ToggleMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	isRead, err := a.contacts.ToggleRead(id)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondError(c, http.StatusNotFound, "Message not found")
			return
		}
		log.Printf("toggle message read failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Could not update message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "is_read": isRead})
}
