package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecan/gradtrack/internal/app/controllers"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	programController *controllers.ProgramController,
	documentController *controllers.DocumentController,
	programDocumentController *controllers.ProgramDocumentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
		}

		// Program entry routes, all owner-scoped
		programs := authenticated.Group("/programs")
		{
			programs.POST("", programController.CreateProgram)
			programs.GET("", programController.ListPrograms)
			programs.GET("/:id", programController.GetProgram)
			programs.PATCH("/:id", programController.UpdateProgram)
			programs.DELETE("/:id", programController.DeleteProgram)

			// Document links hang off the program they belong to
			programs.POST("/:id/documents", programDocumentController.LinkDocument)
			programs.GET("/:id/documents", programDocumentController.ListLinks)
		}

		// Document routes
		documents := authenticated.Group("/documents")
		{
			documents.POST("", documentController.UploadDocument)
			documents.GET("", documentController.ListDocuments)
			documents.GET("/:id", documentController.GetDocument)
			documents.PATCH("/:id", documentController.UpdateDocument)
			documents.DELETE("/:id", documentController.DeleteDocument)
		}

		// Unlinking addresses the link itself, not the program path
		authenticated.DELETE("/program-documents/:linkId", programDocumentController.UnlinkDocument)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
