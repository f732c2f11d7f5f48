package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/utils"
)

// RecordHandler serves GET / POST / PUT / DELETE on /api/<resource>. D is the
// POST body type; its binding tags are the resource's validation rules.
type RecordHandler[T models.Record[T], D models.Draft[T]] struct {
	Service *services.RecordService[T]
}

func NewRecordHandler[T models.Record[T], D models.Draft[T]](svc *services.RecordService[T]) *RecordHandler[T, D] {
	useJSONFieldNames()
	return &RecordHandler[T, D]{Service: svc}
}

func (h *RecordHandler[T, D]) entity() string {
	return strings.ToLower(h.Service.Resource().Entity)
}

// List returns the whole collection
func (h *RecordHandler[T, D]) List(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.SafeError("❌ GET /api/%s: %v", h.Service.Resource().Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read " + h.entity() + " data"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create validates the body, assigns an id and stores the record
func (h *RecordHandler[T, D]) Create(c *gin.Context) {
	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + h.entity() + " data: " + bindingMessage(err)})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req.Record())
	if err != nil {
		utils.SafeError("❌ POST /api/%s: %v", h.Service.Resource().Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add " + h.entity()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces a stored record with the full record in the body
func (h *RecordHandler[T, D]) Update(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + h.entity() + " data: " + bindingMessage(err)})
		return
	}

	updated, err := h.Service.Replace(c.Request.Context(), record)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": h.Service.Resource().Entity + " not found"})
		return
	}
	if err != nil {
		utils.SafeError("❌ PUT /api/%s: %v", h.Service.Resource().Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.entity()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the record named by {"id": ...}; unknown ids succeed
func (h *RecordHandler[T, D]) Delete(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delete request: " + bindingMessage(err)})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), req.ID); err != nil {
		utils.SafeError("❌ DELETE /api/%s: %v", h.Service.Resource().Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + h.entity()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
