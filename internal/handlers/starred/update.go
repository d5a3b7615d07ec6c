package starred

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Update replaces the comment of a starred restaurant.
// Returns the raw updated record rather than the joined view, so a dangling
// catalog reference cannot mask a successful update.
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	rec, err := h.store.UpdateComment(c.Param("id"), in.Comment)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
