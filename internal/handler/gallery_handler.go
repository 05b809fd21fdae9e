package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/framelight/internal/db"
	"github.com/framelight/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ShowClientGalleries lists the signed-in client's active galleries.
func (a *API) ShowClientGalleries(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	profile, galleries, err := a.galleries.ListForClient(user.ID)
	if err != nil {
		if errors.Is(err, service.ErrClientProfileMissing) {
			addFlash(c, "error", "No client profile found. Please contact the photographer.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "client_gallery.html", gin.H{
			"title": "Your Galleries",
			"error": "Could not load your galleries, please try again later.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "client_gallery.html", gin.H{
		"title":     "Your Galleries",
		"profile":   profile,
		"galleries": galleries,
		"errors":    takeFlashes(c, "error"),
	})
}

// ShowGalleryDetail serves a single client gallery, applying the
// ownership check and the optional password gate. POST submits the
// gallery password; everything else about the two methods is shared.
func (a *API) ShowGalleryDetail(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	gallery, err := a.galleries.GetForViewer(c.Param("gallery"), user.ID, user.IsStaff)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			a.renderNotFound(c)
		case errors.Is(err, service.ErrGalleryAccessDenied):
			addFlash(c, "error", "You do not have access to this gallery.")
			c.Redirect(http.StatusFound, "/gallery")
		default:
			log.Printf("gallery lookup failed: %v", err)
			a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
				"title": "Error",
				"error": "Could not load the gallery, please try again later.",
			})
		}
		return
	}

	if gallery.PasswordProtected && !a.unlockGallery(c, gallery) {
		return
	}

	selectedIDs, err := a.galleries.SelectedPhotoIDs(gallery)
	if err != nil {
		log.Printf("selected photos lookup failed: %v", err)
	}
	selected := make(map[uint]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	a.renderHTML(c, http.StatusOK, "gallery_detail.html", gin.H{
		"title":       gallery.Name,
		"gallery":     gallery,
		"photos":      a.photoViews(gallery.Photos),
		"selectedIDs": selectedIDs,
		"selected":    selected,
	})
}

// unlockGallery runs the password gate. It returns true when the
// session already holds the unlock marker or the submitted password
// matches; otherwise it renders the challenge and returns false.
func (a *API) unlockGallery(c *gin.Context, gallery *db.Gallery) bool {
	session := sessions.Default(c)
	marker := galleryAccessKey(gallery.ID)

	if granted, _ := session.Get(marker).(bool); granted {
		return true
	}

	if c.Request.Method == http.MethodPost {
		if a.galleries.CheckPassword(gallery, c.PostForm("password")) {
			session.Set(marker, true)
			if err := session.Save(); err != nil {
				c.Error(err)
			}
			return true
		}

		a.renderHTML(c, http.StatusOK, "gallery_password.html", gin.H{
			"title":   gallery.Name,
			"gallery": gallery,
			"error":   "Incorrect password.",
		})
		return false
	}

	a.renderHTML(c, http.StatusOK, "gallery_password.html", gin.H{
		"title":   gallery.Name,
		"gallery": gallery,
	})
	return false
}

// ToggleSelection flips a photo in or out of a gallery's selected set.
func (a *API) ToggleSelection(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	galleryID, err := parseUintParam(c, "gallery")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery id")
		return
	}
	photoID, err := parseUintParam(c, "photo_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid photo id")
		return
	}

	selected, total, err := a.galleries.ToggleSelection(galleryID, photoID, user.ID, user.IsStaff)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelectionForbidden):
			respondError(c, http.StatusForbidden, "Permission denied")
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Gallery not found")
		case errors.Is(err, service.ErrPhotoNotFound):
			respondError(c, http.StatusNotFound, "Photo not found")
		default:
			log.Printf("toggle selection failed: %v", err)
			respondError(c, http.StatusInternalServerError, "Could not update selection")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"selected":       selected,
		"total_selected": total,
	})
}
