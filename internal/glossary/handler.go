package glossary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"krisenkanon/internal/content"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)         // GET /glossary
	rg.GET("/:term", h.lookup) // GET /glossary/:term
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.All())
}

func (h *Handler) lookup(c *gin.Context) {
	entry := h.Catalog.Lookup(c.Param("term"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown term"})
		return
	}
	lang := content.ParseLang(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{
		"term":       entry.Term,
		"definition": entry.Definition.Pick(lang),
		"references": entry.References,
		"entry":      entry,
	})
}
