package http

import (
	"github.com/gin-gonic/gin"
	"github.com/lifetree-app/lifetree-backend/internal/delivery/http/handler"
	"github.com/lifetree-app/lifetree-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	journalHandler  *handler.JournalHandler
	insightsHandler *handler.InsightsHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	journalHandler *handler.JournalHandler,
	insightsHandler *handler.InsightsHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		journalHandler:  journalHandler,
		insightsHandler: insightsHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.GET("/life-stats", r.profileHandler.GetLifeStats)
				profile.GET("/update-quota", r.profileHandler.GetUpdateQuota)
				profile.GET("/update-history", r.profileHandler.GetUpdateHistory)
			}

			// Journal routes
			visits := protected.Group("/visits")
			{
				visits.POST("", r.journalHandler.CreateVisit)
				visits.GET("", r.journalHandler.ListVisits)
				visits.PUT("/:id", r.journalHandler.UpdateVisit)
				visits.DELETE("/:id", r.journalHandler.DeleteVisit)
			}

			books := protected.Group("/books")
			{
				books.POST("", r.journalHandler.CreateBook)
				books.GET("", r.journalHandler.ListBooks)
				books.PUT("/:id", r.journalHandler.UpdateBook)
				books.DELETE("/:id", r.journalHandler.DeleteBook)
			}

			workouts := protected.Group("/workouts")
			{
				workouts.POST("", r.journalHandler.CreateWorkout)
				workouts.GET("", r.journalHandler.ListWorkouts)
				workouts.PUT("/:id", r.journalHandler.UpdateWorkout)
				workouts.DELETE("/:id", r.journalHandler.DeleteWorkout)
			}

			reflections := protected.Group("/reflections")
			{
				reflections.POST("", r.journalHandler.CreateReflection)
				reflections.GET("", r.journalHandler.ListReflections)
				reflections.PUT("/:id", r.journalHandler.UpdateReflection)
				reflections.DELETE("/:id", r.journalHandler.DeleteReflection)
			}

			relatives := protected.Group("/relatives")
			{
				relatives.POST("", r.journalHandler.CreateRelative)
				relatives.GET("", r.journalHandler.ListRelatives)
				relatives.PUT("/:id", r.journalHandler.UpdateRelative)
				relatives.DELETE("/:id", r.journalHandler.DeleteRelative)
			}

			// Insights routes
			insightsGroup := protected.Group("/insights")
			{
				insightsGroup.POST("/generate", r.insightsHandler.Generate)
			}
		}
	}

	return router
}
