package http

import "github.com/gin-gonic/gin"

// Register attaches the authenticated dashboard routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

// RegisterPublic attaches the unauthenticated portfolio read routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/:ownerId/projects", h.publicList)
	rg.GET("/:ownerId/projects/:id", h.publicGet)
}
