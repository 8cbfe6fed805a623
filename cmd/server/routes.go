package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tutorlink.backend/internal/interfaces/http/handlers"
	"tutorlink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	adminHandler       *handlers.AdminHandler
	profileHandler     *handlers.ProfileHandler
	courseHandler      *handlers.CourseHandler
	requirementHandler *handlers.RequirementHandler
	messageHandler     *handlers.MessageHandler
	scheduleHandler    *handlers.ScheduleHandler
	authMiddleware     gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Public tutor directory
		v1.GET("/tutors", d.profileHandler.BrowseTutors)

		// Public course catalog
		v1.GET("/courses", d.courseHandler.BrowseCourses)

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.GetMyProfile)
			profile.PUT("/tutor", middleware.RequireTutor(), d.profileHandler.UpdateTutorProfile)
			profile.PUT("/institution", middleware.RequireRole("institution"), d.profileHandler.UpdateInstitutionProfile)
		}

		// Course routes (protected)
		courses := v1.Group("/courses")
		courses.Use(d.authMiddleware)
		{
			courses.POST("", middleware.RequireProvider(), d.courseHandler.CreateCourse)
			courses.GET("/mine", middleware.RequireProvider(), d.courseHandler.ListMyCourses)
			courses.GET("/students", middleware.RequireProvider(), d.courseHandler.ListMyStudents)
			courses.PUT("/:id", middleware.RequireProvider(), d.courseHandler.UpdateCourse)
			courses.DELETE("/:id", middleware.RequireProvider(), d.courseHandler.DeleteCourse)
			courses.POST("/:id/enroll", middleware.RequireStudent(), d.courseHandler.Enroll)
		}
		v1.GET("/enrollments", d.authMiddleware, middleware.RequireStudent(), d.courseHandler.ListMyEnrollments)

		// Requirement routes (protected)
		requirements := v1.Group("/requirements")
		requirements.Use(d.authMiddleware)
		{
			requirements.POST("", middleware.RequireStudent(), d.requirementHandler.PostRequirement)
			requirements.GET("/mine", middleware.RequireStudent(), d.requirementHandler.ListMyRequirements)
			requirements.POST("/:id/close", middleware.RequireStudent(), d.requirementHandler.CloseRequirement)
			requirements.GET("", middleware.RequireTutor(), d.requirementHandler.BrowseMatching)
		}

		// Conversation routes (protected)
		conversations := v1.Group("/conversations")
		conversations.Use(d.authMiddleware)
		{
			conversations.POST("", middleware.RequireStudent(), d.messageHandler.StartConversation)
			conversations.GET("", d.messageHandler.ListConversations)
			conversations.POST("/:id/messages", d.messageHandler.SendMessage)
			conversations.GET("/:id/messages", d.messageHandler.ListMessages)
		}

		// Schedule routes (protected)
		schedule := v1.Group("/schedule")
		schedule.Use(d.authMiddleware)
		{
			schedule.POST("", middleware.RequireProvider(), d.scheduleHandler.PublishSlot)
			schedule.GET("", middleware.RequireProvider(), d.scheduleHandler.MySchedule)
			schedule.GET("/bookings", middleware.RequireStudent(), d.scheduleHandler.MyBookings)
			schedule.POST("/:id/book", middleware.RequireStudent(), d.scheduleHandler.BookSlot)
			schedule.POST("/:id/cancel", d.scheduleHandler.CancelSlot)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.POST("/users/:id/approve", d.adminHandler.ApproveUser)
			admin.POST("/users/:id/reject", d.adminHandler.RejectUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/users/:id/status", d.adminHandler.GetUserStatus)
			admin.GET("/stats", d.adminHandler.GetStats)
			admin.GET("/events", d.adminHandler.Events)
		}
	}
}
