package handler

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/config"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionWebhookHandler is the payment gateway's write path for
// subscription state. The core never mutates subscription fields anywhere
// else; it only reads them. Payment verification proper is the gateway's
// job; this endpoint just checks the shared secret.
type SubscriptionWebhookHandler struct {
	cfg       *config.Config
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditLogRepository
	log       *zap.Logger
}

func NewSubscriptionWebhookHandler(cfg *config.Config, userRepo *repository.UserRepository, auditRepo *repository.AuditLogRepository, log *zap.Logger) *SubscriptionWebhookHandler {
	return &SubscriptionWebhookHandler{cfg: cfg, userRepo: userRepo, auditRepo: auditRepo, log: log}
}

type subscriptionEvent struct {
	UserID           uint   `json:"user_id" binding:"required"`
	SubscriptionType string `json:"subscription_type" binding:"required,oneof=BASIC PREMIUM VIP"`
	ExpiresAt        string `json:"expires_at" binding:"required"` // RFC 3339
}

// Handle processes POST /webhooks/subscription.
func (h *SubscriptionWebhookHandler) Handle(c *gin.Context) {
	secret := h.cfg.Webhook.Secret
	got := c.GetHeader("X-Webhook-Secret")
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(got)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}
	var ev subscriptionEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	expiresAt, err := time.Parse(time.RFC3339, ev.ExpiresAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires_at (use RFC 3339)"})
		return
	}
	if _, err := h.userRepo.GetByID(ev.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := h.userRepo.SetSubscription(ev.UserID, ev.SubscriptionType, &expiresAt); err != nil {
		h.log.Error("subscription write failed", zap.Uint("user_id", ev.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription update failed"})
		return
	}
	_ = h.auditRepo.Create(&models.AuditLog{
		Action:     "subscription_updated",
		Resource:   "user",
		ResourceID: strconv.FormatUint(uint64(ev.UserID), 10),
		IP:         c.ClientIP(),
		Metadata:   ev.SubscriptionType,
	})
	h.log.Info("subscription updated",
		zap.Uint("user_id", ev.UserID),
		zap.String("type", ev.SubscriptionType),
		zap.Time("expires_at", expiresAt))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
