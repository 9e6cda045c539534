package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixhub/internal/catalog"
	"fixhub/internal/render"
)

// Handler exposes the filter engine over HTTP. The three list routes
// feed the cascading dropdowns; entry/search/resolve return the
// troubleshooting card data.
type Handler struct {
	Engine   *catalog.Engine
	Resolver *render.Resolver
}

func NewHandler(engine *catalog.Engine) *Handler {
	return &Handler{
		Engine:   engine,
		Resolver: render.NewResolver(engine),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/brands", h.brands)   // GET /catalog/brands
	rg.GET("/types", h.types)     // GET /catalog/types?brand=
	rg.GET("/codes", h.codes)     // GET /catalog/codes?brand=&type=
	rg.GET("/entry", h.entry)     // GET /catalog/entry?brand=&type=&code=
	rg.GET("/search", h.search)   // GET /catalog/search?q=
	rg.GET("/resolve", h.resolve) // GET /catalog/resolve?brand=&type=&code= or ?q=
}

func (h *Handler) brands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.Engine.Brands()})
}

func (h *Handler) types(c *gin.Context) {
	brand := c.Query("brand")
	c.JSON(http.StatusOK, gin.H{
		"brand": brand,
		"types": h.Engine.Types(brand),
	})
}

func (h *Handler) codes(c *gin.Context) {
	brand := c.Query("brand")
	typ := c.Query("type")
	entries := h.Engine.Codes(brand, typ)

	c.JSON(http.StatusOK, gin.H{
		"brand": brand,
		"type":  typ,
		"total": len(entries),
		"items": entries,
	})
}

func (h *Handler) entry(c *gin.Context) {
	entry, ok := h.Engine.FindExact(c.Query("brand"), c.Query("type"), c.Query("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) search(c *gin.Context) {
	entry, ok := h.Engine.SearchText(c.Query("q"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// resolve is the widget's single entry point: dropdown-driven when all
// of brand/type/code are present, free-text otherwise. Static repair
// pages call it with a pre-selected triple.
func (h *Handler) resolve(c *gin.Context) {
	sel := render.Selection{
		Brand: c.Query("brand"),
		Type:  c.Query("type"),
		Code:  c.Query("code"),
		Query: c.Query("q"),
	}

	card, ok := h.Resolver.Resolve(sel)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}
