package handlers

import (
	"errors"
	"net/http"

	"jeevanrakshak/models"
	"jeevanrakshak/services/healthreport"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
)

type HealthReportHandler struct {
	Service healthreport.HealthReportService
}

func NewHealthReportHandler(svc healthreport.HealthReportService) *HealthReportHandler {
	return &HealthReportHandler{Service: svc}
}

// SubmitHealthReportHandler handles POST /api/health-reports.
func (h *HealthReportHandler) SubmitHealthReportHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
		return
	}
	var report models.HealthReport
	if err := c.ShouldBindJSON(&report); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	report.Key = ""
	report.UserID = session.UserID
	report.UserEmail = session.Email

	created, err := h.Service.Submit(c.Request.Context(), report)
	if err != nil {
		var ve *healthreport.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit health report", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MyHealthReportsHandler handles GET /api/health-reports/mine.
func (h *HealthReportHandler) MyHealthReportsHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
		return
	}
	list, err := h.Service.ListMine(c.Request.Context(), session.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list health reports", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list, "count": len(list)})
}

// AllHealthReportsHandler handles GET /api/admin/health-reports.
func (h *HealthReportHandler) AllHealthReportsHandler(c *gin.Context) {
	list, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list health reports", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list, "count": len(list)})
}
