package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminHandler struct {
	companionRepo *repository.CompanionRepository
	listingRepo   *repository.ListingRepository
	auditRepo     *repository.AuditLogRepository
	syncSvc       *service.SyncService
	log           *zap.Logger
}

func NewAdminHandler(
	companionRepo *repository.CompanionRepository,
	listingRepo *repository.ListingRepository,
	auditRepo *repository.AuditLogRepository,
	syncSvc *service.SyncService,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		companionRepo: companionRepo,
		listingRepo:   listingRepo,
		auditRepo:     auditRepo,
		syncSvc:       syncSvc,
		log:           log,
	}
}

// ListProfiles handles GET /admin/companions?status=PENDING.
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	ps, err := h.companionRepo.ListByStatus(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": ps, "count": len(ps)})
}

// SetStatus handles PUT /admin/companions/:id/status. The listing re-syncs
// immediately so an approval or suspension is visible (or invisible) in the
// same request.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.companionRepo.SetStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		return
	}
	h.audit(c, "set_status", uint(id), req.Status)
	listing, err := h.syncSvc.Sync(c.Request.Context(), uint(id))
	if err != nil {
		h.log.Warn("status saved but sync failed", zap.Uint64("profile_id", id), zap.Error(err))
		c.JSON(http.StatusAccepted, gin.H{
			"status":  req.Status,
			"warning": "status saved but listing not yet synchronized",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status, "listing": listing})
}

// SetFeatured handles PUT /admin/companions/:id/featured. is_featured is
// the one listing column owned by admins, not the synchronizer.
func (h *AdminHandler) SetFeatured(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Featured *bool `json:"featured" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.listingRepo.SetFeatured(c.Request.Context(), uint(id), *req.Featured); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "featured update failed"})
		return
	}
	h.audit(c, "set_featured", uint(id), strconv.FormatBool(*req.Featured))
	c.JSON(http.StatusOK, gin.H{"companion_id": id, "featured": *req.Featured})
}

// GetPrivateProfile handles GET /admin/companions/:id/private, the only
// path that may read real_name. It returns the raw profile rather than a
// disclosed view, which is why it sits behind AdminRequired.
func (h *AdminHandler) GetPrivateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.companionRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	h.audit(c, "read_private_profile", uint(id), "")
	c.JSON(http.StatusOK, gin.H{
		"profile":   p,
		"real_name": p.RealName,
	})
}

// AuditLog handles GET /admin/audit.
func (h *AdminHandler) AuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := h.auditRepo.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audit lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *AdminHandler) audit(c *gin.Context, action string, profileID uint, metadata string) {
	actor := middleware.GetUserID(c)
	_ = h.auditRepo.Create(&models.AuditLog{
		ActorID:    &actor,
		Action:     action,
		Resource:   "companion_profile",
		ResourceID: strconv.FormatUint(uint64(profileID), 10),
		IP:         c.ClientIP(),
		Metadata:   metadata,
	})
}
