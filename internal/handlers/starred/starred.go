package starred

import (
	"github.com/feastlog/starred-api/internal/catalog"
	"github.com/feastlog/starred-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Package starred provides the starred-restaurant HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Handler wires starred-restaurant endpoints to the in-memory store and the
// external restaurant catalog.
type Handler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// New returns a new starred-restaurants handler.
func New(s *store.Store, c *catalog.Catalog) *Handler {
	return &Handler{store: s, catalog: c}
}

// view is the joined projection returned on reads: the record plus the
// restaurant's display name, looked up in the catalog at response time.
func view(r store.Record, name string) gin.H {
	return gin.H{
		"id":      r.ID,
		"comment": r.Comment,
		"name":    name,
	}
}
