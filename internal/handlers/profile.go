package handlers

import (
	"log"
	"net/http"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/gin-gonic/gin"
)

// UpdateProfile handles PUT /api/profile/:identity. Only metadata, flags and
// the watchlist are editable; trade state goes through the ledger.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	profile, err := h.Store.Load(ctx, c.Param("identity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Watchlist != nil {
		profile.Watchlist = *req.Watchlist
	}
	if req.TermsAccepted != nil {
		profile.TermsAccepted = *req.TermsAccepted
	}
	if req.OnboardingCompleted != nil {
		profile.OnboardingCompleted = *req.OnboardingCompleted
	}

	if err := h.Store.Save(ctx, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ResetAccount handles POST /api/account/reset: sign out and drop the local
// state. The cloud row is kept, so the history survives a fresh sign-in.
func (h *Handler) ResetAccount(c *gin.Context) {
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
	h.Store.Evict(ctx, req.Identity)

	c.JSON(http.StatusOK, gin.H{"message": "Account reset"})
}
