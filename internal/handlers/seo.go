package handlers

import (
	"auctions/internal/services"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	service *services.AuctionService
	siteURL string
}

func NewSEOHandler(service *services.AuctionService, siteURL string) *SEOHandler {
	return &SEOHandler{service: service, siteURL: strings.TrimSuffix(siteURL, "/")}
}

// RobotsTxt 返回 robots.txt 内容
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	content := fmt.Sprintf(`User-agent: *
Allow: /

# 禁止爬取需要登录的页面
Disallow: /create
Disallow: /watchlist
Disallow: /sales
Disallow: /purchases
Disallow: /notifications

Sitemap: %s/sitemap.xml
`, h.siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML 动态生成 sitemap.xml：首页、分类页和所有进行中的拍品
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	listings, err := h.service.ListActiveListings(c.Request.Context())
	if err != nil {
		status, _ := MapErrorToHTTP(err)
		logServiceError(c, "SitemapXML", status, err)
		c.Status(status)
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.siteURL + "/", LastMod: today, ChangeFreq: "hourly", Priority: "1.0"},
			{Loc: h.siteURL + "/categories", LastMod: today, ChangeFreq: "weekly", Priority: "0.6"},
		},
	}
	for _, l := range listings {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.siteURL + listingPath(l.ID),
			LastMod:    l.CreatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "hourly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		logServiceError(c, "SitemapXML", http.StatusInternalServerError, err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
