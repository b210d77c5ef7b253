package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, hostMiddleware gin.HandlerFunc) {
	group := g.Group("/properties")

	// Listings are public; the map view needs no account.
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Host-only routes ===
	group.POST("", authMiddleware, hostMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, hostMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, hostMiddleware, h.Delete)
}
