package route

import (
	"standards-hub/backend/api/handler"
	"standards-hub/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	apiRouter.Use(middleware.GlobalAPIRateLimit())
	apiRouter.Use(middleware.LangMiddleware())
	{
		// Public catalog routes
		apiRouter.GET("/health", handler.GetHealth)
		apiRouter.GET("/standards", handler.GetAllStandards)
		apiRouter.GET("/standards/:id/files", handler.GetStandardFiles)
		apiRouter.GET("/search", handler.SearchFiles)
		apiRouter.GET("/statistics", handler.GetStatistics)

		// File routes
		fileRoute := apiRouter.Group("/files")
		{
			fileRoute.GET("/:id", handler.GetFile)
			fileRoute.GET("/:id/download", handler.DownloadFile)

			// Admin-only write operations
			adminFileRoute := fileRoute.Group("/")
			adminFileRoute.Use(middleware.AdminAuth())
			{
				adminFileRoute.POST("/upload", handler.UploadFile)
				adminFileRoute.DELETE("/:id", handler.DeleteFile)
			}
		}

		// Admin session routes
		adminRoute := apiRouter.Group("/admin")
		{
			adminRoute.POST("/login", handler.AdminLogin)
			adminRoute.POST("/logout", handler.AdminLogout)
			adminRoute.GET("/status", handler.AdminStatus)
		}
	}
}
