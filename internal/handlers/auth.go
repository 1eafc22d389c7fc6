package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Dhakshin2007/TradeoBull/internal/auth"
	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/gin-gonic/gin"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	// Reject up front if a profile row already exists for this email.
	if exists, err := h.Store.Exists(ctx, req.Email); err == nil && exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.ErrAlreadyRegistered.Error()})
		return
	}

	identity, err := h.Gateway.SignUp(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, auth.ErrAlreadyRegistered) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	profile := models.DefaultProfile(identity)
	profile.Name = req.Name

	// No rollback of the identity on failure here: the next sign-in
	// auto-creates the missing profile row.
	if err := h.Store.Save(ctx, profile); err != nil {
		log.Printf("profile creation failed for %s: %v", identity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize profile data. Please contact support."})
		return
	}

	h.Store.MarkSession(ctx, identity)
	c.JSON(http.StatusOK, profile)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	identity, err := h.Gateway.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Store.Load(ctx, identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	// Write-back self-heals an identity whose registration never finished
	// creating a profile row.
	if err := h.Store.Save(ctx, profile); err != nil {
		log.Printf("profile write-back failed for %s: %v", identity, err)
	}

	h.Store.MarkSession(ctx, identity)
	c.JSON(http.StatusOK, profile)
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	var req struct {
		Identity string `json:"identity" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	if err := h.Gateway.SignOut(ctx, req.Identity); err != nil {
		log.Printf("sign-out failed for %s: %v", req.Identity, err)
	}
	h.Store.ClearSession(ctx, req.Identity)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
