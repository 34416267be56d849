package http

import (
	"github.com/gin-gonic/gin"

	"progresstracker/internal/adapter/http/handlers"
	"progresstracker/internal/adapter/http/middleware"
	"progresstracker/internal/adapter/ws"
	"progresstracker/pkg/tokens"
)

func RegisterRoutes(
	r *gin.Engine,
	manager *tokens.Manager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	progressHandler *handlers.ProgressHandler,
	preferenceHandler *handlers.PreferenceHandler,
	feedHandler *ws.Handler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(manager))
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.GET("/tasks", taskHandler.ListTasks)
		authorized.POST("/tasks", taskHandler.CreateTask)
		authorized.PATCH("/tasks/:id", taskHandler.PatchTask)
		authorized.POST("/tasks/:id/toggle", taskHandler.ToggleTask)
		authorized.DELETE("/tasks/:id", taskHandler.DeleteTask)

		authorized.GET("/progress/dashboard", progressHandler.Dashboard)
		authorized.GET("/progress/calendar", progressHandler.Calendar)
		authorized.GET("/progress/report", progressHandler.Report)

		authorized.GET("/preferences", preferenceHandler.Get)
		authorized.PUT("/preferences", preferenceHandler.Put)

		authorized.GET("/feed", feedHandler.Subscribe)
	}
}
