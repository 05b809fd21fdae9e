package handler

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RobotsTxt serves the crawler policy with the sitemap location.
func (a *API) RobotsTxt(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /gallery\n")
	b.WriteString("Disallow: /dashboard\n")
	b.WriteString("Disallow: /api/\n\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimSuffix(a.cfg.SiteBaseURL, "/"))

	c.String(http.StatusOK, b.String())
}

// SecurityTxt serves the .well-known/security.txt contact info.
func (a *API) SecurityTxt(c *gin.Context) {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact: %s\n", a.cfg.SEO.SecurityContact)
	fmt.Fprintf(&b, "Preferred-Languages: en\n")
	fmt.Fprintf(&b, "Canonical: %s/.well-known/security.txt\n", strings.TrimSuffix(a.cfg.SiteBaseURL, "/"))

	c.String(http.StatusOK, b.String())
}

// AdsTxt serves an empty ads.txt.
func (a *API) AdsTxt(c *gin.Context) {
	c.String(http.StatusOK, "# No ads currently running on this site\n")
}

// GoogleVerification serves the Search Console verification file.
func (a *API) GoogleVerification(c *gin.Context) {
	c.String(http.StatusOK, "google-site-verification: %s.html", a.cfg.SEO.GoogleVerification)
}

// BingVerification serves the Webmaster Tools verification file.
func (a *API) BingVerification(c *gin.Context) {
	content := fmt.Sprintf("<?xml version=\"1.0\"?>\n<users>\n    <user>%s</user>\n</users>", a.cfg.SEO.BingVerification)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(content))
}

// YandexVerification serves the Yandex verification page.
func (a *API) YandexVerification(c *gin.Context) {
	content := fmt.Sprintf("<html><head><meta name=\"yandex-verification\" content=\"%s\" /></head><body></body></html>", a.cfg.SEO.YandexVerification)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(content))
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the public pages and category filters.
func (a *API) Sitemap(c *gin.Context) {
	base := strings.TrimSuffix(a.cfg.SiteBaseURL, "/")

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: base + "/portfolio", ChangeFreq: "weekly", Priority: "0.9"},
			{Loc: base + "/about", ChangeFreq: "monthly", Priority: "0.5"},
			{Loc: base + "/contact", ChangeFreq: "monthly", Priority: "0.5"},
		},
	}

	categories, err := a.categories.ListAll()
	if err != nil {
		log.Printf("sitemap categories failed: %v", err)
	}
	for _, category := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/portfolio?category=" + category.Slug,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
