package main

import (
	"log"
	"net/http"

	"github.com/feastlog/starred-api/internal/catalog"
	"github.com/feastlog/starred-api/internal/config"
	"github.com/feastlog/starred-api/internal/handlers/starred"
	"github.com/feastlog/starred-api/internal/middleware"
	"github.com/feastlog/starred-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func newRouter(cat *catalog.Catalog, st *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	h := starred.New(st, cat)
	g := r.Group("/starred-restaurants")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	return r
}

// seedRecords stars the first two catalog entries so a fresh process has data.
func seedRecords(cat *catalog.Catalog) []store.Record {
	comments := []string{"An amazing quiet place", "Solid food, small portions"}
	recs := make([]store.Record, 0, len(comments))
	for i, rest := range cat.All() {
		if i == len(comments) {
			break
		}
		recs = append(recs, store.Record{
			ID:           uuid.NewString(),
			RestaurantID: rest.ID,
			Comment:      comments[i],
		})
	}
	return recs
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
	}

	st := store.New(seedRecords(cat)...)

	r := newRouter(cat, st)
	log.Printf("listening on %s (%d restaurants in catalog)", cfg.Addr, cat.Len())
	_ = r.Run(cfg.Addr)
}
