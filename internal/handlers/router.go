package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	catalogHandler  *CatalogHandler
	contentHandler  *ContentHandler
	updateHandler   *UpdateHandler
	feedbackHandler *FeedbackHandler
	userHandler     *UserHandler
	exportHandler   *ExportHandler
	authMiddleware  *CasdoorAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	identityRepo repositories.IdentityRepository,
) *HandlerManager {
	authMiddleware := NewCasdoorAuthMiddleware(identityRepo, serviceManager.Auth())

	return &HandlerManager{
		authHandler:     NewAuthHandler(serviceManager.Auth(), logger),
		catalogHandler:  NewCatalogHandler(serviceManager.Catalog(), serviceManager.Update(), logger),
		contentHandler:  NewContentHandler(serviceManager.Content(), logger),
		updateHandler:   NewUpdateHandler(serviceManager.Update(), logger),
		feedbackHandler: NewFeedbackHandler(serviceManager.Feedback(), logger),
		userHandler:     NewUserHandler(serviceManager.User(), logger),
		exportHandler:   NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:  authMiddleware,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signin", hm.authHandler.SignIn)
			auth.POST("/signout", hm.authMiddleware.AuthMiddleware(), hm.authHandler.SignOut)
			auth.GET("/session", hm.authMiddleware.OptionalAuthMiddleware(), hm.authHandler.Session)
		}

		// Public catalog routes - anonymous viewers browse as guests,
		// locked items lose their file URLs
		catalog := v1.Group("/catalog")
		catalog.Use(hm.authMiddleware.OptionalAuthMiddleware())
		{
			catalog.GET("/vault", hm.catalogHandler.BrowseVault)
			catalog.GET("/mastery", hm.catalogHandler.BrowseMastery)
		}

		// Announcements feed - public read
		v1.GET("/updates", hm.catalogHandler.ListUpdates)

		// Feedback - any visitor can submit, admins read the log
		v1.POST("/feedback", hm.authMiddleware.OptionalAuthMiddleware(), hm.feedbackHandler.Submit)
		v1.GET("/feedback", hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.feedbackHandler.List)

		// Profile routes - any authenticated user
		profile := v1.Group("/profile")
		profile.Use(hm.authMiddleware.AuthMiddleware())
		{
			profile.GET("", hm.userHandler.GetProfile)
			profile.PUT("", hm.userHandler.UpdateProfile)
		}

		// Content management - admins only
		content := v1.Group("/content")
		content.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			content.POST("", hm.contentHandler.Upload)
			content.GET("", hm.contentHandler.List)
			content.DELETE("/:id", hm.contentHandler.Delete)
		}

		// Announcement management - admins only
		updates := v1.Group("/updates")
		updates.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			updates.POST("", hm.updateHandler.Post)
			updates.DELETE("/:id", hm.updateHandler.Delete)
		}

		// Team management - admins only
		team := v1.Group("/team")
		team.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			team.GET("", hm.userHandler.Team)
			team.POST("/promote", hm.userHandler.Promote)
		}

		// Exports - admins only
		export := v1.Group("/export")
		export.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			export.GET("/users", hm.exportHandler.ExportUsers)
			export.GET("/feedback", hm.exportHandler.ExportFeedback)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "boldscholars-platform",
		})
	})
}
