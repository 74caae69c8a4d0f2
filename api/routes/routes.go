package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/greenroots/treefund-backend/internal/config"
	"github.com/greenroots/treefund-backend/internal/handlers"
	"github.com/greenroots/treefund-backend/internal/middleware"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	DonationHandler *handlers.DonationHandler
	StatsHandler    *handlers.StatsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		public.POST("/register", deps.AuthHandler.Register)
		public.POST("/auth/login", deps.AuthHandler.Login)
		public.POST("/forgot-password", deps.AuthHandler.ForgotPassword)

		// Impact figures are publicly visible
		public.GET("/donations/donation-stats", deps.StatsHandler.GetStats)
	}

	// Authenticated routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/auth/me", deps.AuthHandler.Me)

		donations := protected.Group("/donations")
		{
			donations.POST("/donate", deps.DonationHandler.Donate)
			donations.GET("/donations", deps.DonationHandler.GetDonations)
			donations.GET("/donation-summary", deps.StatsHandler.GetSummary)

			// Admin-only donation administration
			admin := donations.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/all-donations-admin", deps.DonationHandler.GetAllDonations)
				admin.PUT("/:id", deps.DonationHandler.UpdateDonation)
				admin.DELETE("/:id", deps.DonationHandler.DeleteDonation)
			}
		}
	}

	return router
}
