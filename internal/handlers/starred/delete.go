package starred

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a starred restaurant by record id.
// KISS behavior:
// - If the record doesn't exist, return not_found.
// - Otherwise, remove it and return a simple confirmation.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
