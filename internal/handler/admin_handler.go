package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/framelight/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadPhoto stores an uploaded image and creates its photo record,
// deriving the thumbnail synchronously.
func (a *API) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Could not read uploaded image")
		return
	}
	defer src.Close()

	now := time.Now()
	key := path.Join(
		"photos",
		now.Format("2006/01/02"),
		fmt.Sprintf("%s%s", uuid.New().String(), path.Ext(file.Filename)),
	)

	ctx := c.Request.Context()
	if err := a.store.Save(ctx, key, src, file.Size, contentType); err != nil {
		log.Printf("photo upload save failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Could not store the image")
		return
	}

	input := service.PhotoInput{
		Title:       c.PostForm("title"),
		ImagePath:   key,
		CategoryID:  uint(categoryID),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		IsFeatured:  c.PostForm("is_featured") == "true",
		IsPublic:    c.DefaultPostForm("is_public", "true") == "true",
		IsHero:      c.PostForm("is_hero") == "true",
		IsAbout:     c.PostForm("is_about") == "true",
	}

	photo, err := a.photos.Create(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoInvalid):
			respondError(c, http.StatusBadRequest, "Title and image are required")
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, "Category not found")
		default:
			log.Printf("photo create failed: %v", err)
			respondError(c, http.StatusInternalServerError, "Could not save the photo")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"photo":   a.photos.View(*photo),
	})
}

type categoryPayload struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// CreateCategory adds a portfolio category.
func (a *API) CreateCategory(c *gin.Context) {
	var payload categoryPayload
	if !bindJSON(c, &payload, "Invalid JSON data") {
		return
	}

	item, err := a.categories.Create(service.CategoryInput{
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		SortOrder:   payload.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Category name is required")
		case errors.Is(err, service.ErrCategoryExists):
			respondError(c, http.StatusBadRequest, "Category already exists")
		default:
			log.Printf("category create failed: %v", err)
			respondError(c, http.StatusInternalServerError, "Could not create the category")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": item})
}
