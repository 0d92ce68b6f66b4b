package controller

import (
	"context"
	"net/http"

	"noticeboard-backend/middelware"
	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Auth         *AuthController
	Organization *OrganizationController
	Member       *MemberController
	Message      *MessageController
	Analytics    *AnalyticsController
	Settings     *SettingsController

	jwtManager *middelware.JWTManager
}

func NewController(ctx context.Context, svc *services.Service, jwtManager *middelware.JWTManager, log logger.Logger) *Controller {
	return &Controller{
		Auth:         NewAuthController(ctx, svc.Auth, jwtManager, log),
		Organization: NewOrganizationController(ctx, svc.Organization, log),
		Member:       NewMemberController(ctx, svc.Member, log),
		Message:      NewMessageController(ctx, svc.Message, log),
		Analytics:    NewAnalyticsController(ctx, svc.Analytics, log),
		Settings:     NewSettingsController(ctx, svc.Organization, log),
		jwtManager:   jwtManager,
	}
}

// RegisterRoutes wires every route under the configured base path and starts
// the HTTP server (blocking).
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string, log logger.Logger) error {
	logging := middelware.NewLoggingMiddleware(log)
	r.Use(logging.Recovery())
	r.Use(middelware.NewCORSMiddleware(config).CORS())
	r.Use(logging.RequestLogger())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	auth := v1.Group("/auth")
	auth.POST("/login", c.Auth.Login)
	auth.POST("/logout", c.jwtManager.AuthMiddleware(), c.Auth.Logout)
	auth.POST("/change-password", c.jwtManager.AuthMiddleware(), c.Auth.ChangePassword)

	protected := v1.Group("")
	protected.Use(c.jwtManager.AuthMiddleware())

	protected.GET("/organizations", c.Organization.List)
	protected.POST("/organizations", c.Organization.Create)
	protected.GET("/organizations/:id", c.Organization.Get)
	protected.PUT("/organizations/:id", c.Organization.Update)
	protected.DELETE("/organizations/:id", c.Organization.Delete)

	protected.GET("/members", c.Member.List)
	protected.POST("/members", c.Member.Create)
	protected.GET("/members/:id", c.Member.Get)
	protected.PUT("/members/:id", c.Member.Update)
	protected.DELETE("/members/:id", c.Member.Delete)

	protected.GET("/messages", c.Message.List)
	protected.POST("/messages", c.Message.Send)
	protected.GET("/messages/recent", c.Message.Recent)
	protected.GET("/messages/:id", c.Message.Get)
	protected.DELETE("/messages/:id", c.Message.Delete)

	protected.GET("/analytics/kpis", c.Analytics.KPIs)
	protected.GET("/analytics/message-volume", c.Analytics.MessageVolume)
	protected.GET("/analytics/messages-per-org", c.Analytics.MessagesPerOrg)
	protected.GET("/analytics/activities", c.Analytics.Activities)
	protected.GET("/analytics/stats", c.Analytics.Stats)

	protected.GET("/settings", c.Settings.Get)
	protected.PUT("/settings", c.Settings.Update)

	protected.GET("/profile", c.Auth.Profile)
	protected.PUT("/profile", c.Auth.UpdateProfile)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
