package annotations

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"krisenkanon/internal/auth"
	"krisenkanon/internal/content"
	"krisenkanon/internal/feed"
	"krisenkanon/pkg/models"
)

type Handler struct {
	Repo     *Repo
	Registry *content.Registry
	Hub      *feed.Hub
}

func NewHandler(repo *Repo, registry *content.Registry, hub *feed.Hub) *Handler {
	return &Handler{Repo: repo, Registry: registry, Hub: hub}
}

// RegisterPublicRoutes exposes read access on the crises group.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/:slug/annotations", h.list)
}

// RegisterEditorRoutes exposes writes; the caller wraps the group with
// the auth middleware.
func (h *Handler) RegisterEditorRoutes(rg *gin.RouterGroup) {
	rg.POST("/annotations", h.create)
	rg.DELETE("/annotations/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	slug := c.Param("slug")
	items, err := h.Repo.ListBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

type createReq struct {
	Slug  string `json:"slug"`
	Quote string `json:"quote"`
	Body  string `json:"body"`
}

func (h *Handler) create(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug required"})
		return
	}
	// annotations attach to known entries only; drafts included
	if h.Registry.Get(slug, models.LangDE) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown slug"})
		return
	}

	body := strings.TrimSpace(req.Body)
	if body == "" || len(body) > 4000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be 1-4000 chars"})
		return
	}

	a := models.Annotation{
		ID:       uuid.NewString(),
		Slug:     slug,
		EditorID: claims.EditorID,
		Quote:    strings.TrimSpace(req.Quote),
		Body:     body,
	}
	if err := h.Repo.Create(c.Request.Context(), a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), a.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}
	if saved == nil {
		// should not happen, but safe
		a.Editor = claims.Handle
		a.CreatedAt = time.Now().UTC()
		saved = &a
	}

	if h.Hub != nil {
		h.Hub.BroadcastJSON(feed.AnnotationEvent{
			Type:         feed.AnnotationCreated,
			Slug:         saved.Slug,
			AnnotationID: saved.ID,
			Editor:       saved.Editor,
			At:           saved.CreatedAt,
		})
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := c.Param("id")
	existing, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), id, claims.EditorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Hub != nil && existing != nil {
		h.Hub.BroadcastJSON(feed.AnnotationEvent{
			Type:         feed.AnnotationDeleted,
			Slug:         existing.Slug,
			AnnotationID: existing.ID,
			Editor:       claims.Handle,
			At:           time.Now().UTC(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
