package submissions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"titleparser-backend/internal/shared/server/respond"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// Handler serves the audit read API.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// Recent handles GET /v1/recent.
func (h *Handler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respond.Error(c, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	items, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "recent_failed", "failed to load recent submissions", nil)
		return
	}
	if items == nil {
		items = []Submission{}
	}
	respond.OK(c, gin.H{
		"items": items,
		"count": len(items),
	})
}
