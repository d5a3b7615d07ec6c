package starred

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get returns a single starred restaurant by record id, joined against the
// catalog. A record whose restaurant has disappeared from the catalog is
// indistinguishable from a missing record: both are not_found.
func (h *Handler) Get(c *gin.Context) {
	rec, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}

	rest, ok := h.catalog.FindByID(rec.RestaurantID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}

	c.JSON(http.StatusOK, view(rec, rest.Name))
}
