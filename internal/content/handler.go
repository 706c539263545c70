package content

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"krisenkanon/pkg/models"
)

type Handler struct {
	Registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{Registry: registry}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)                      // GET /crises
	rg.GET("/:slug", h.getBySlug)           // GET /crises/:slug
	rg.GET("/:slug/related", h.related)     // GET /crises/:slug/related
	rg.GET("/:slug/cascade", h.cascade)     // GET /crises/:slug/cascade
}

func (h *Handler) RegisterContentRoutes(rg *gin.RouterGroup) {
	rg.GET("/version", h.version)   // GET /content/version
	rg.GET("/count", h.count)       // GET /content/count
	rg.GET("/manifests", h.manifests)
	rg.GET("/issues", h.issues)
}

// ParseLang maps a query value onto a supported language, defaulting to
// German.
func ParseLang(s string) models.Language {
	if strings.EqualFold(strings.TrimSpace(s), string(models.LangEN)) {
		return models.LangEN
	}
	return models.LangDE
}

func (h *Handler) list(c *gin.Context) {
	lang := ParseLang(c.Query("lang"))
	items := h.Registry.All(lang)

	// categories=Macht,Kontrolle OR categories=Macht&categories=Kontrolle
	categories := c.QueryArray("categories")
	if len(categories) == 0 {
		if s := c.Query("categories"); s != "" {
			categories = strings.Split(s, ",")
		}
	}
	items = filterItems(items, c.Query("q"), categories, c.Query("status"))

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"lang":  lang,
		"items": items,
	})
}

// filterItems narrows the index in memory: keyword against title/summary,
// any-match categories (raw tokens normalized first), exact status.
func filterItems(items []models.IndexItem, q string, categories []string, status string) []models.IndexItem {
	q = strings.ToLower(strings.TrimSpace(q))
	status = strings.ToLower(strings.TrimSpace(status))

	var wanted []string
	for _, cat := range categories {
		cat = strings.TrimSpace(cat)
		if cat == "" {
			continue
		}
		wanted = append(wanted, NormalizeCategory(cat))
	}

	if q == "" && len(wanted) == 0 && status == "" {
		return items
	}

	out := make([]models.IndexItem, 0, len(items))
	for _, item := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Summary), q) {
			continue
		}
		if status != "" && strings.ToLower(string(item.Status)) != status {
			continue
		}
		if len(wanted) > 0 && !anyCategoryMatch(item.Categories, wanted) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func anyCategoryMatch(have, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func (h *Handler) getBySlug(c *gin.Context) {
	lang := ParseLang(c.Query("lang"))
	record := h.Registry.Get(c.Param("slug"), lang)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) related(c *gin.Context) {
	lang := ParseLang(c.Query("lang"))
	items := h.Registry.Related(c.Param("slug"), lang)
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) cascade(c *gin.Context) {
	entries := h.Registry.Cascade(c.Param("slug"))
	c.JSON(http.StatusOK, gin.H{"total": len(entries), "entries": entries})
}

func (h *Handler) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": h.Registry.ContentVersion(),
		"count":   h.Registry.Count(),
	})
}

func (h *Handler) count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.Registry.Count()})
}

func (h *Handler) manifests(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.ManifestMap())
}

func (h *Handler) issues(c *gin.Context) {
	issues := h.Registry.ValidationIssues()
	c.JSON(http.StatusOK, gin.H{"total": len(issues), "issues": issues})
}
