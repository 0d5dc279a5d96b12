package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UploadHandler struct {
	cloud         cloudinary.Client
	companionRepo *repository.CompanionRepository
	syncSvc       *service.SyncService
	log           *zap.Logger
}

func NewUploadHandler(cloud cloudinary.Client, companionRepo *repository.CompanionRepository, syncSvc *service.SyncService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{cloud: cloud, companionRepo: companionRepo, syncSvc: syncSvc, log: log}
}

// UploadProfilePhoto uploads a companion's profile photo and re-syncs the
// listing so the new photo propagates like any other profile write.
func (h *UploadHandler) UploadProfilePhoto(c *gin.Context) {
	userID := middleware.GetUserID(c)
	p, err := h.companionRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	folder := "waifu/profiles/" + strconv.FormatUint(uint64(userID), 10)
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		h.log.Error("photo upload failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	p.PhotoURL = url
	if err := h.companionRepo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	if _, err := h.syncSvc.Sync(c.Request.Context(), p.ID); err != nil {
		c.JSON(http.StatusAccepted, gin.H{
			"url":     url,
			"warning": "saved but not yet visible; listing synchronization failed, retry shortly",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
