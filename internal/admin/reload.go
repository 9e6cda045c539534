package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixhub/internal/catalog"
	"fixhub/internal/events"
	"fixhub/internal/source"
)

// ReloadHandler re-fetches the catalog from the configured source and
// swaps it into the engine. A failed fetch leaves the last-known
// catalog in place and is reported to event subscribers once.
type ReloadHandler struct {
	Engine *catalog.Engine
	Source source.Source
	Hub    *events.Hub
}

func NewReloadHandler(engine *catalog.Engine, src source.Source, hub *events.Hub) *ReloadHandler {
	return &ReloadHandler{Engine: engine, Source: src, Hub: hub}
}

func (h *ReloadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/reload", h.reload)
}

func (h *ReloadHandler) reload(c *gin.Context) {
	entries, err := h.Source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[catalog] reload from %s failed: %v", h.Source.Name(), err)
		if h.Hub != nil {
			h.Hub.Broadcast(events.LoadFailed(h.Source.Name(), err))
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog reload failed"})
		return
	}

	h.Engine.Load(entries)
	log.Printf("[catalog] reloaded %d entries from %s", len(entries), h.Source.Name())
	if h.Hub != nil {
		h.Hub.Broadcast(events.Reloaded(h.Source.Name(), len(entries)))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "reloaded",
		"source":  h.Source.Name(),
		"entries": len(entries),
	})
}
