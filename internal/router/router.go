package router

import (
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/config"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/handler"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/ws"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	companionRepo := repository.NewCompanionRepository(db)
	listingRepo := repository.NewListingRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	syncSvc := service.NewSyncService(companionRepo, listingRepo, userRepo, cfg.Sync.Timeout, log)
	catalogSvc := service.NewCatalogService(listingRepo, userRepo, time.Now, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo, log)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	companionHandler := handler.NewCompanionHandler(companionRepo, syncSvc, log)
	catalogHandler := handler.NewCatalogHandler(catalogSvc, log)
	meHandler := handler.NewMeHandler(userRepo, companionRepo)
	adminHandler := handler.NewAdminHandler(companionRepo, listingRepo, auditRepo, syncSvc, log)
	webhookHandler := handler.NewSubscriptionWebhookHandler(cfg, userRepo, auditRepo, log)
	uploadHandler := handler.NewUploadHandler(cloud, companionRepo, syncSvc, log)

	authMw := middleware.AuthRequired(&cfg.JWT)
	authOpt := middleware.AuthOptional(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		// Catalog is open to anonymous viewers; redaction happens per row.
		api.GET("/catalog", authOpt, catalogHandler.Browse)
		api.GET("/catalog/:companion_id", authOpt, catalogHandler.Detail)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.GET("/subscription", meHandler.GetSubscription)
		}

		companions := api.Group("/companions")
		companions.Use(authMw)
		{
			companions.POST("/profile", companionHandler.CreateProfile)
			companions.PUT("/profile", middleware.RequireRole(domain.RoleCompanion), companionHandler.UpdateProfile)
			companions.POST("/photo", middleware.RequireRole(domain.RoleCompanion), uploadHandler.UploadProfilePhoto)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/companions", adminHandler.ListProfiles)
			admin.PUT("/companions/:id/status", adminHandler.SetStatus)
			admin.PUT("/companions/:id/featured", adminHandler.SetFeatured)
			admin.GET("/companions/:id/private", adminHandler.GetPrivateProfile)
			admin.GET("/audit", adminHandler.AuditLog)
		}

		api.POST("/webhooks/subscription", webhookHandler.Handle)
	}

	r.GET("/ws/chat", ws.UpgradeChatWS(&cfg.JWT))

	return r
}
