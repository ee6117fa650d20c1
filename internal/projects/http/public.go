package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Public read endpoints back the portfolio pages themselves. They address
// the same per-owner namespace as the dashboard but require no identity.

func (h *Handler) publicList(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) publicGet(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("ownerId"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}
