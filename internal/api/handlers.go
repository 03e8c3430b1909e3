package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/store"
)

// loadDocument loads the whole document for the current request, answering
// 500 itself on failure.
func loadDocument(c *gin.Context, repo store.Repository) (*model.Document, bool) {
	doc, err := repo.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return nil, false
	}
	return doc, true
}

// saveDocument persists the whole document, answering 500 itself on failure.
func saveDocument(c *gin.Context, repo store.Repository, doc *model.Document) bool {
	if err := repo.Save(c.Request.Context(), doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return false
	}
	return true
}

// intQuery reads a numeric query parameter, falling back to the default on
// absence or malformed input.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
