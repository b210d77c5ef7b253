package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, hostMiddleware gin.HandlerFunc) {
	properties := g.Group("/properties/:id/photos")
	{
		properties.GET("", h.ListByProperty)
		properties.POST("", authMiddleware, hostMiddleware, h.Upload)
	}

	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.ServePhoto)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
		photos.DELETE("/:id", authMiddleware, hostMiddleware, h.Delete)
	}
}
