package routes

import (
	"time"

	"jeevanrakshak/handlers"
	"jeevanrakshak/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Navigation links guarding each protected page.
const (
	linkDashboard              = "dashboard"
	linkSubmitComplaint        = "submit-complaint"
	linkMyComplaints           = "my-complaints"
	linkComplaintManagement    = "complaint-management"
	linkHealthData             = "health-data"
	linkSubmittedHealthReports = "submitted-health-reports"
	linkCollectedHealthData    = "collected-health-data"
)

// RegisterSessionRoutes registers sign-in, sign-out and profile endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/session", hb.StartSessionHandler)
	r.DELETE("/api/session", hb.EndSessionHandler)

	api := r.Group("/api/users")
	{
		api.POST("/profile", hb.RegisterProfileHandler)

		// Protected routes (Require Authentication)
		api.GET("/me", middleware.SessionAuthMiddleware(hb.Sessions), hb.GetMyProfileHandler)
	}
}

// RegisterNavigationRoutes serves the role-pruned navigation tree; anonymous callers get the login link.
func RegisterNavigationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/navigation", middleware.OptionalSessionMiddleware(hb.Sessions), hb.NavigationHandler)
}

// RegisterComplaintRoutes registers the citizen complaint endpoints.
func RegisterComplaintRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/complaints")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("", middleware.RequireLink(hb.Guard, linkSubmitComplaint), hb.SubmitComplaintHandler)
		api.GET("/mine", middleware.RequireLink(hb.Guard, linkMyComplaints), hb.MyComplaintsHandler)
		api.PUT("/:key/feedback", middleware.RequireLink(hb.Guard, linkMyComplaints), hb.ComplaintFeedbackHandler)
	}
}

// RegisterHealthReportRoutes registers the ASHA worker field report endpoints.
func RegisterHealthReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/health-reports")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("", middleware.RequireLink(hb.Guard, linkHealthData), hb.SubmitHealthReportHandler)
		api.GET("/mine", middleware.RequireLink(hb.Guard, linkSubmittedHealthReports), hb.MyHealthReportsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for administrators.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.SessionAuthMiddleware(hb.Sessions))

		complaints := adminGroup.Group("/complaints", middleware.RequireLink(hb.Guard, linkComplaintManagement))
		complaints.GET("", hb.AllComplaintsHandler)
		complaints.PATCH("/:key/status", hb.UpdateComplaintStatusHandler)
		complaints.PATCH("/:key/priority", hb.OverrideComplaintPriorityHandler)
		complaints.DELETE("/:key", hb.DeleteComplaintHandler)

		adminGroup.GET("/summary", middleware.RequireLink(hb.Guard, linkDashboard), hb.ComplaintSummaryHandler)
		adminGroup.GET("/health-reports", middleware.RequireLink(hb.Guard, linkCollectedHealthData), hb.AllHealthReportsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthCheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterNavigationRoutes(r, hb)
	RegisterComplaintRoutes(r, hb)
	RegisterHealthReportRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
