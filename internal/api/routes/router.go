package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/docs"
	"github.com/linskybing/docflow/internal/api/handlers"
	"github.com/linskybing/docflow/internal/api/middleware"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(svc *application.Services, hub *notify.Hub) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, svc, hub)
	return r
}

func RegisterRoutes(r *gin.Engine, svc *application.Services, hub *notify.Hub) {
	h := handlers.New(svc, hub)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	signing := r.Group("/signing")
	{
		signing.POST("/:token/approve", h.Signing.Approve)
		signing.POST("/:token/reject", h.Signing.Reject)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", h.Stream.Stream)

		users := auth.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/me", h.User.Me)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("", h.Document.ListDocuments)
			documents.POST("", h.Document.CreateDocument)
			documents.GET("/todo", h.Document.ListTodo)
			documents.GET("/by-template/:templateId", h.Document.ListByTemplate)

			documents.GET("/:id", h.Document.GetDocument)
			documents.PUT("/:id", h.Document.UpdateDocument)
			documents.DELETE("/:id", h.Document.DeleteDocument)
			documents.PUT("/:id/deadline", h.Document.UpdateDeadline)
			documents.POST("/:id/view", h.Document.MarkViewed)
			documents.GET("/:id/can-review", h.Document.CanReview)
			documents.GET("/:id/can-sign", h.Document.CanSign)
			documents.POST("/:id/send-message", h.Document.SendMessage)

			documents.POST("/:id/start-editing", h.Document.StartEditing)
			documents.POST("/:id/submit-for-review", h.Document.SubmitForReview)
			documents.POST("/:id/complete-reviewer-assignment", h.Document.CompleteReviewerAssignment)
			documents.POST("/:id/complete-signer-assignment", h.Document.CompleteSignerAssignment)
			documents.POST("/:id/review/approve", h.Document.ApproveReview)
			documents.POST("/:id/review/reject", h.Document.RejectReview)
			documents.POST("/:id/approve", h.Document.ApproveDocument)
			documents.POST("/:id/reject", h.Document.RejectDocument)

			documents.POST("/:id/assign-editor", h.Document.AssignEditor)
			documents.POST("/:id/assign-reviewer", h.Document.AssignReviewer)
			documents.POST("/:id/assign-signer", h.Document.AssignSigner)
			documents.POST("/:id/assign-signers-batch", h.Document.AssignSignersBatch)
			documents.DELETE("/:id/remove-reviewer", h.Document.RemoveReviewer)
			documents.DELETE("/:id/remove-signer", h.Document.RemoveSigner)
		}

		templates := auth.Group("/templates")
		{
			templates.GET("", h.Template.ListTemplates)
			templates.POST("", h.Template.CreateTemplate)
			templates.GET("/:id", h.Template.GetTemplate)
			templates.PUT("/:id", h.Template.UpdateTemplate)
			templates.DELETE("/:id", h.Template.DeleteTemplate)
			templates.POST("/:id/duplicate", h.Template.DuplicateTemplate)
		}

		folders := auth.Group("/folders")
		{
			folders.GET("", h.Template.ListFolders)
			folders.POST("", h.Template.CreateFolder)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}
	}
}
