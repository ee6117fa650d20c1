package profile

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
)

// userManager is the slice of the Firebase Auth admin client the profile
// handlers need; tests substitute a fake.
type userManager interface {
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *fbauth.UserToUpdate) (*fbauth.UserRecord, error)
}

type Handler struct {
	users userManager
}

func NewHandler(users userManager) *Handler {
	return &Handler{users: users}
}

type profileResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

func toResponse(u *fbauth.UserRecord) profileResponse {
	return profileResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

// GetProfile returns the current user's identity record.
func (h *Handler) GetProfile(c *gin.Context) {
	uid := auth.UserID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
		return
	}

	resp := toResponse(user)
	// Phone and federated accounts can lack an email on the record while
	// the verified token still carries the claim.
	if resp.Email == "" {
		resp.Email = auth.Email(c)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": resp})
}

// UpdateProfile updates the display name on the identity record.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid := auth.UserID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Name cannot be empty"})
		return
	}

	params := (&fbauth.UserToUpdate{}).DisplayName(name)
	user, err := h.users.UpdateUser(c.Request.Context(), uid, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": toResponse(user)})
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
}
