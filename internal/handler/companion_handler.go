package handler

import (
	"errors"
	"net/http"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompanionHandler owns the profile write path. Every successful profile
// write triggers synchronization; a failed sync does not roll the profile
// back but is reported as "saved but not yet visible".
type CompanionHandler struct {
	repo    *repository.CompanionRepository
	syncSvc *service.SyncService
	log     *zap.Logger
}

func NewCompanionHandler(repo *repository.CompanionRepository, syncSvc *service.SyncService, log *zap.Logger) *CompanionHandler {
	return &CompanionHandler{repo: repo, syncSvc: syncSvc, log: log}
}

type profileRequest struct {
	StageName     *string         `json:"stage_name"`
	RealName      *string         `json:"real_name"`
	Age           *int            `json:"age"`
	Description   *string         `json:"description"`
	State         *string         `json:"state"`
	City          *string         `json:"city"`
	Municipality  *string         `json:"municipality"`
	ContactNumber *string         `json:"contact_number"`
	Pricing       *domain.Pricing `json:"pricing"`
	PromotionPlan *string         `json:"promotion_plan"`
	IsActive      *bool           `json:"is_active"`
}

func applyProfileRequest(p *models.CompanionProfile, req *profileRequest) {
	if req.StageName != nil {
		p.StageName = *req.StageName
	}
	if req.RealName != nil {
		p.RealName = *req.RealName
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Municipality != nil {
		p.Municipality = *req.Municipality
	}
	if req.ContactNumber != nil {
		p.ContactNumber = *req.ContactNumber
	}
	if req.Pricing != nil {
		p.Pricing = *req.Pricing
	}
	if req.PromotionPlan != nil {
		p.PromotionPlan = *req.PromotionPlan
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

// CreateProfile creates the authenticated user's companion profile. New
// profiles start PENDING; approval is an admin decision.
func (h *CompanionHandler) CreateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if existing, err := h.repo.GetByUserID(userID); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "profile already exists"})
		return
	}
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.CompanionProfile{
		UserID:        userID,
		Status:        domain.ProfileStatusPending,
		IsActive:      true,
		PromotionPlan: domain.PlanBasic,
	}
	applyProfileRequest(p, &req)
	if verr := validateProfile(p); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	if err := h.repo.Create(p); err != nil {
		h.log.Error("create profile failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create profile failed"})
		return
	}
	h.respondWithSync(c, p, http.StatusCreated)
}

// UpdateProfile updates the authenticated companion's profile and re-syncs
// the listing. Activation and deactivation go through here via is_active.
func (h *CompanionHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	p, err := h.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyProfileRequest(p, &req)
	if verr := validateProfile(p); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	if err := h.repo.Update(p); err != nil {
		h.log.Error("update profile failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update profile failed"})
		return
	}
	h.respondWithSync(c, p, http.StatusOK)
}

// validateProfile mirrors the projection builder's rules so malformed data
// is rejected before the write, not after.
func validateProfile(p *models.CompanionProfile) error {
	_, err := service.BuildListing(p, nil)
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// respondWithSync runs synchronization after a successful profile write. On
// sync failure the profile stays saved and the owner is told the listing is
// not yet visible; re-submitting re-runs the idempotent sync.
func (h *CompanionHandler) respondWithSync(c *gin.Context, p *models.CompanionProfile, okStatus int) {
	listing, err := h.syncSvc.Sync(c.Request.Context(), p.ID)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.log.Warn("profile saved but sync failed", zap.Uint("profile_id", p.ID), zap.Error(err))
		c.JSON(http.StatusAccepted, gin.H{
			"profile": p,
			"warning": "saved but not yet visible; listing synchronization failed, retry shortly",
		})
		return
	}
	c.JSON(okStatus, gin.H{"profile": p, "listing": listing})
}
