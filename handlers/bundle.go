// File: jeevanrakshak/handlers/bundle.go
package handlers

import (
	"jeevanrakshak/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions middleware.SessionAuthenticator
	Guard    middleware.LinkGuard

	// Session and profile endpoints
	StartSessionHandler    gin.HandlerFunc
	EndSessionHandler      gin.HandlerFunc
	RegisterProfileHandler gin.HandlerFunc
	GetMyProfileHandler    gin.HandlerFunc

	// Navigation
	NavigationHandler gin.HandlerFunc

	// Complaint endpoints
	SubmitComplaintHandler   gin.HandlerFunc
	MyComplaintsHandler      gin.HandlerFunc
	ComplaintFeedbackHandler gin.HandlerFunc

	// Admin complaint endpoints
	AllComplaintsHandler             gin.HandlerFunc
	UpdateComplaintStatusHandler     gin.HandlerFunc
	OverrideComplaintPriorityHandler gin.HandlerFunc
	ComplaintSummaryHandler          gin.HandlerFunc
	DeleteComplaintHandler           gin.HandlerFunc

	// Health report endpoints
	SubmitHealthReportHandler gin.HandlerFunc
	MyHealthReportsHandler    gin.HandlerFunc
	AllHealthReportsHandler   gin.HandlerFunc

	HealthCheckHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(
	sessions middleware.SessionAuthenticator,
	guard middleware.LinkGuard,
	users *UserHandler,
	navigation *NavigationHandler,
	complaints *ComplaintHandler,
	reports *HealthReportHandler,
) *HandlerBundle {
	return &HandlerBundle{
		Sessions: sessions,
		Guard:    guard,

		StartSessionHandler:    users.StartSessionHandler,
		EndSessionHandler:      users.EndSessionHandler,
		RegisterProfileHandler: users.RegisterProfileHandler,
		GetMyProfileHandler:    users.GetMyProfileHandler,

		NavigationHandler: navigation.GetNavigationHandler,

		SubmitComplaintHandler:   complaints.SubmitComplaintHandler,
		MyComplaintsHandler:      complaints.MyComplaintsHandler,
		ComplaintFeedbackHandler: complaints.ComplaintFeedbackHandler,

		AllComplaintsHandler:             complaints.AllComplaintsHandler,
		UpdateComplaintStatusHandler:     complaints.UpdateComplaintStatusHandler,
		OverrideComplaintPriorityHandler: complaints.OverrideComplaintPriorityHandler,
		ComplaintSummaryHandler:          complaints.ComplaintSummaryHandler,
		DeleteComplaintHandler:           complaints.DeleteComplaintHandler,

		SubmitHealthReportHandler: reports.SubmitHealthReportHandler,
		MyHealthReportsHandler:    reports.MyHealthReportsHandler,
		AllHealthReportsHandler:   reports.AllHealthReportsHandler,

		HealthCheckHandler: HealthCheckHandler,
	}
}
