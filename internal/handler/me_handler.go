package handler

import (
	"net/http"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo      *repository.UserRepository
	companionRepo *repository.CompanionRepository
}

func NewMeHandler(userRepo *repository.UserRepository, companionRepo *repository.CompanionRepository) *MeHandler {
	return &MeHandler{userRepo: userRepo, companionRepo: companionRepo}
}

// GetProfile returns the authenticated account plus its companion profile
// if one exists, and the effective subscription tier at this instant.
func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	resp := gin.H{
		"user": u,
		"tier": service.ResolveTier(u, time.Now()),
	}
	if p, err := h.companionRepo.GetByUserID(userID); err == nil {
		resp["companion_profile"] = p
	}
	c.JSON(http.StatusOK, resp)
}

// GetSubscription returns just the tier and expiry; clients poll this after
// the payment gateway confirms a purchase.
func (h *MeHandler) GetSubscription(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tier":       service.ResolveTier(u, time.Now()),
		"expires_at": u.SubscriptionExpiresAt,
	})
}
