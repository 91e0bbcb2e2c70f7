package parses

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"titleparser-backend/internal/shared/metrics"
	"titleparser-backend/internal/shared/server/respond"
	"titleparser-backend/internal/titles"
)

const (
	maxTitleLength = 512
	maxBatchSize   = 100
)

// Handler wires HTTP handlers to the parse service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches parse routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parse)
	rg.POST("/parse_batch", h.parseBatch)
}

type parseRequest struct {
	Title string       `json:"title"`
	Hints titles.Hints `json:"hints"`
}

type batchRequest struct {
	Titles []string     `json:"titles"`
	Hints  titles.Hints `json:"hints"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejectParse(c, "invalid request body", nil)
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		rejectParse(c, "title is required", nil)
		return
	}
	if len(title) > maxTitleLength {
		rejectParse(c, "title is too long", nil)
		return
	}
	c.Set("rawTitle", title)

	result := h.Svc.Parse(c.Request.Context(), title, req.Hints, metaFrom(c))
	respond.OK(c, result)
}

func (h *Handler) parseBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejectParse(c, "invalid request body", nil)
		return
	}
	if len(req.Titles) == 0 {
		rejectParse(c, "titles must not be empty", nil)
		return
	}
	if len(req.Titles) > maxBatchSize {
		rejectParse(c, "too many titles in one batch", nil)
		return
	}
	cleaned := make([]string, 0, len(req.Titles))
	for _, raw := range req.Titles {
		title := strings.TrimSpace(raw)
		if title == "" {
			rejectParse(c, "titles must not contain empty entries", nil)
			return
		}
		if len(title) > maxTitleLength {
			rejectParse(c, "title is too long", nil)
			return
		}
		cleaned = append(cleaned, title)
	}
	c.Set("batchSize", len(cleaned))

	results := h.Svc.ParseBatch(c.Request.Context(), cleaned, req.Hints, metaFrom(c))
	respond.OK(c, results)
}

func metaFrom(c *gin.Context) RequestMeta {
	return RequestMeta{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: c.GetString("requestId"),
	}
}

func rejectParse(c *gin.Context, message string, details interface{}) {
	metrics.IncParseFailed()
	respond.Error(c, http.StatusBadRequest, "validation_error", message, details)
}
