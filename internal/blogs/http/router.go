package http

import "github.com/gin-gonic/gin"

// Register attaches blog routes to the given router group. Reads are public;
// mutations pass through the admin gate.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/featured", h.featured)
	rg.GET("/slug/:slug", h.getBySlug)
	rg.GET("/:id", h.get)

	rg.POST("", requireAdmin, h.create)
	rg.PUT("/:id", requireAdmin, h.update)
	rg.DELETE("/:id", requireAdmin, h.delete)
}
