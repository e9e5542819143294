package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campuslink/portal/internal/app/controllers"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	portalController *controllers.PortalController,
	actionController *controllers.ActionController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/refresh", portalController.Refresh)
		authenticated.GET("/stats", portalController.Stats)

		// Resource hub
		resources := authenticated.Group("/resources")
		{
			resources.GET("", portalController.Resources)
			resources.GET("/pending", portalController.PendingVerification)
			resources.POST("", actionController.UploadResource)
			resources.POST("/:id/upvote", actionController.UpvoteResource)
			resources.POST("/:id/download", actionController.DownloadResource)
			resources.POST("/:id/verify", actionController.VerifyResource)
			resources.POST("/:id/wishlist", actionController.ToggleWishlist)
			resources.DELETE("/:id", actionController.DeleteResource)
		}

		authenticated.GET("/wishlist", portalController.Wishlist)

		// Marketplace
		marketplace := authenticated.Group("/marketplace")
		{
			marketplace.GET("", portalController.Marketplace)
			marketplace.POST("", actionController.PostItem)
			marketplace.POST("/:id/purchase", actionController.PurchaseItem)
			marketplace.POST("/:id/sold", actionController.ToggleSold)
			marketplace.DELETE("/:id", actionController.DeleteItem)
			marketplace.GET("/:id/chat", portalController.ChatThread)
			marketplace.POST("/:id/chat", actionController.SendChatMessage)
		}

		// Events
		events := authenticated.Group("/events")
		{
			events.GET("", portalController.Events)
			events.GET("/mine", portalController.OrganizerEvents)
			events.POST("", actionController.CreateEvent)
			events.POST("/:id/register", actionController.RegisterForEvent)
			events.POST("/:id/close", actionController.ToggleRegistration)
			events.DELETE("/:id", actionController.DeleteEvent)
		}

		// Lost and found
		lostfound := authenticated.Group("/lostfound")
		{
			lostfound.GET("", portalController.LostFound)
			lostfound.POST("", actionController.PostLostFound)
			lostfound.DELETE("/:id", actionController.DeleteLostFound)
		}

		// Community feed
		community := authenticated.Group("/community")
		{
			community.GET("", portalController.Discussions)
			community.GET("/announcements", portalController.Announcements)
			community.POST("", actionController.PostDiscussion)
			community.POST("/announcements", actionController.PostAnnouncement)
			community.POST("/:id/reply", actionController.AddComment)
			community.POST("/:id/upvote", actionController.UpvoteDiscussion)
			community.POST("/:id/downvote", actionController.DownvoteDiscussion)
			community.DELETE("/:id", actionController.DeletePost)
		}

		// Admin panel
		admin := authenticated.Group("/admin")
		{
			admin.GET("/users", adminController.Users)
			admin.POST("/users/:id/ban", adminController.ToggleBan)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.GET("/moderation", adminController.Moderation)
			admin.GET("/organizer-requests", adminController.OrganizerRequests)
			admin.POST("/organizer-requests", adminController.SubmitOrganizerRequest)
			admin.POST("/organizer-requests/:id/approve", adminController.ApproveOrganizer)
			admin.POST("/organizer-requests/:id/reject", adminController.RejectOrganizer)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewStructuredResponse(gin.H{"status": "ok"}, ""))
	})
}
