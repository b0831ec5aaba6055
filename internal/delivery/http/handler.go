package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/usecase"
)

// maxBatchItems caps one batch request; larger inventories are split by
// the caller.
const maxBatchItems = 500

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver     *usecase.ResolutionService
	batchWorkers int
}

// NewHandler creates a new HTTP handler
func NewHandler(resolver *usecase.ResolutionService, batchWorkers int) *Handler {
	return &Handler{
		resolver:     resolver,
		batchWorkers: batchWorkers,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricelens-backend",
		"version": "1.0.0",
	})
}

// ResolvePrice handles a single replacement-price lookup
func (h *Handler) ResolvePrice(c *gin.Context) {
	if h.resolver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "resolution engine not configured",
		})
		return
	}

	var request domain.ResolveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "description is required",
		})
		return
	}

	result, err := h.resolver.Resolve(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// BatchRequest is the payload for a multi-row price lookup
type BatchRequest struct {
	Items []domain.ResolveRequest `json:"items" binding:"required"`
}

// ResolveBatch handles a multi-row replacement-price lookup
func (h *Handler) ResolveBatch(c *gin.Context) {
	if h.resolver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "resolution engine not configured",
		})
		return
	}

	var request BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "items array is required",
		})
		return
	}

	if len(request.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items array is empty"})
		return
	}
	if len(request.Items) > maxBatchItems {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "too many items in one batch",
			"limit": maxBatchItems,
		})
		return
	}

	requests := make([]*domain.ResolveRequest, len(request.Items))
	for i := range request.Items {
		requests[i] = &request.Items[i]
	}

	results := h.resolver.ResolveBatch(c.Request.Context(), requests, h.batchWorkers)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
