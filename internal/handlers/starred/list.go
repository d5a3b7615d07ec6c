package starred

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns every starred restaurant joined against the catalog, in
// insertion order.
// Records whose restaurant no longer exists in the catalog are skipped;
// Get still reports those ids individually as not_found.
func (h *Handler) List(c *gin.Context) {
	recs := h.store.List()
	out := make([]gin.H, 0, len(recs))
	for _, r := range recs {
		rest, ok := h.catalog.FindByID(r.RestaurantID)
		if !ok {
			continue
		}
		out = append(out, view(r, rest.Name))
	}
	c.JSON(http.StatusOK, out)
}
