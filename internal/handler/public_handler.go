package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/framelight/internal/db"
	"github.com/framelight/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownEngine = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Linkify))
	sanitizer      = bluemonday.UGCPolicy()
)

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the landing page with hero, featured and about photos.
func (a *API) ShowHome(c *gin.Context) {
	hero, featured, about, err := a.photos.HomePhotos()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"title": "Home",
			"error": "Could not load photos, please try again later.",
		})
		return
	}

	data := gin.H{
		"title":          "Home",
		"heroPhotos":     a.photoViews(hero),
		"featuredPhotos": a.photoViews(featured),
		"messages":       takeFlashes(c, "success"),
		"errors":         takeFlashes(c, "error"),
	}
	if about != nil {
		data["aboutPhoto"] = a.photos.View(*about)
	}

	a.renderHTML(c, http.StatusOK, "home.html", data)
}

// ShowPortfolio renders the public portfolio, optionally filtered to a
// category. Unknown category slugs are a 404.
func (a *API) ShowPortfolio(c *gin.Context) {
	categorySlug := c.Query("category")

	categories, err := a.categories.ListAll()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "portfolio.html", gin.H{
			"title": "Portfolio",
			"error": "Could not load the portfolio, please try again later.",
		})
		return
	}

	photos, err := a.photos.FilterPublic(categorySlug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			a.renderNotFound(c)
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "portfolio.html", gin.H{
			"title": "Portfolio",
			"error": "Could not load the portfolio, please try again later.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "portfolio.html", gin.H{
		"title":           "Portfolio",
		"photos":          photos,
		"categories":      categories,
		"currentCategory": categorySlug,
	})
}

// ShowAbout renders the about page with the photographer bio.
func (a *API) ShowAbout(c *gin.Context) {
	settings, err := a.settings.Get()
	if err != nil {
		c.Error(err)
	}

	data := gin.H{
		"title": "About",
		"bio":   renderMarkdown(settings.AboutMarkdown),
	}

	_, _, about, err := a.photos.HomePhotos()
	if err == nil && about != nil {
		data["aboutPhoto"] = a.photos.View(*about)
	}

	a.renderHTML(c, http.StatusOK, "about.html", data)
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":    "Contact",
		"messages": takeFlashes(c, "success"),
	})
}

// SubmitContact validates and persists a contact inquiry, then
// redirects back with a flash. Invalid input re-renders the form with
// the submitted values and creates no record.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		ProjectType: c.PostForm("project_type"),
		Message:     c.PostForm("message"),
	}

	_, fieldErrs, err := a.contacts.Create(input)
	if err != nil {
		log.Printf("contact message create failed: %v", err)
		a.renderHTML(c, http.StatusInternalServerError, "contact.html", gin.H{
			"title": "Contact",
			"error": "Something went wrong, please try again later.",
			"form":  input,
		})
		return
	}
	if fieldErrs != nil {
		a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
			"title":     "Contact",
			"form":      input,
			"fieldErrs": fieldErrs,
		})
		return
	}

	addFlash(c, "success", "Thank you for your message! I'll get back to you soon.")
	c.Redirect(http.StatusFound, "/contact")
}

// FilterPhotos is the public photo filter API. An empty or "all"
// category returns every public photo.
func (a *API) FilterPhotos(c *gin.Context) {
	categorySlug := c.DefaultPostForm("category", c.Query("category"))

	photos, err := a.photos.FilterPublic(categorySlug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("filter photos failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Could not load photos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (a *API) photoViews(photos []db.Photo) []service.PhotoView {
	views := make([]service.PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, a.photos.View(p))
	}
	return views
}
