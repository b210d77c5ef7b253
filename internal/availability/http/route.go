package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, hostMiddleware gin.HandlerFunc) {
	group := g.Group("/properties/:id/availability")

	group.GET("", h.Get)
	group.PUT("", authMiddleware, hostMiddleware, h.Replace)
}
