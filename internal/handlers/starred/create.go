package starred

import (
	"errors"
	"net/http"
	"strings"

	"github.com/feastlog/starred-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Create stars a restaurant.
// Flow:
// 1) The restaurant must exist in the catalog -> otherwise not_found.
// 2) The restaurant must not be starred already -> otherwise conflict.
// 3) Append a new record with a generated id and return it.
func (h *Handler) Create(c *gin.Context) {
	// Minimal request validation (KISS)
	var in struct {
		RestaurantID string `json:"restaurantId"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.RestaurantID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, ok := h.catalog.FindByID(in.RestaurantID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Restaurant does not exist"})
		return
	}

	rec, err := h.store.Create(in.RestaurantID, in.Comment)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyStarred) {
			c.JSON(http.StatusConflict, gin.H{"error": "conflict", "message": "Restaurant already starred"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}
