package handlers

import (
	"errors"
	"net/http"
	"strings"

	"jeevanrakshak/models"
	"jeevanrakshak/services/complaint"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
)

const (
	maxComplaintImageBytes = 10 << 20
	// statusClientClosedRequest is logged when the citizen left before the complaint was stored.
	statusClientClosedRequest = 499
)

type ComplaintHandler struct {
	Service complaint.ComplaintService
}

func NewComplaintHandler(svc complaint.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{Service: svc}
}

// SubmitComplaintHandler handles POST /api/complaints. It accepts a JSON body
// or a multipart form with an optional "image" file.
func (h *ComplaintHandler) SubmitComplaintHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to submit a complaint", nil)
		return
	}

	var req complaint.SubmitRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req = complaint.SubmitRequest{
			Name:        c.PostForm("name"),
			Phone:       c.PostForm("phone"),
			Zone:        c.PostForm("zone"),
			Address:     c.PostForm("address"),
			Type:        c.PostForm("complaintType"),
			Description: c.PostForm("description"),
			Urgency:     models.Urgency(c.PostForm("urgency")),
		}

		fileHeader, err := c.FormFile("image")
		if err == nil {
			if fileHeader.Size > maxComplaintImageBytes {
				utils.JSONError(c, http.StatusRequestEntityTooLarge, "image must be 10MB or smaller", nil)
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "unable to read image", err)
				return
			}
			defer file.Close()
			req.Image = &complaint.ImageUpload{
				Filename:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Data:        file,
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			utils.JSONError(c, http.StatusBadRequest, "invalid image upload", err)
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req.Urgency = models.ParseUrgency(string(req.Urgency))
	req.UserID = session.UserID
	req.UserEmail = session.Email

	created, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "failed to submit complaint", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MyComplaintsHandler handles GET /api/complaints/mine.
func (h *ComplaintHandler) MyComplaintsHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
		return
	}
	var opts complaint.ListOptions
	_ = c.ShouldBindQuery(&opts)

	list, err := h.Service.ListMine(c.Request.Context(), session.UserID, opts)
	if err != nil {
		h.writeError(c, "failed to list complaints", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list, "count": len(list)})
}

// ComplaintFeedbackHandler handles PUT /api/complaints/:key/feedback.
func (h *ComplaintHandler) ComplaintFeedbackHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
		return
	}
	var req complaint.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.Service.SubmitFeedback(c.Request.Context(), c.Param("key"), session.UserID, req)
	if err != nil {
		h.writeError(c, "failed to submit feedback", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AllComplaintsHandler handles GET /api/admin/complaints.
func (h *ComplaintHandler) AllComplaintsHandler(c *gin.Context) {
	var opts complaint.ListOptions
	_ = c.ShouldBindQuery(&opts)

	list, err := h.Service.ListAll(c.Request.Context(), opts)
	if err != nil {
		h.writeError(c, "failed to list complaints", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list, "count": len(list)})
}

// UpdateComplaintStatusHandler handles PATCH /api/admin/complaints/:key/status.
func (h *ComplaintHandler) UpdateComplaintStatusHandler(c *gin.Context) {
	session, _ := currentSession(c)
	var req complaint.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("key"), req, adminEmail(session))
	if err != nil {
		h.writeError(c, "failed to update complaint status", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// OverrideComplaintPriorityHandler handles PATCH /api/admin/complaints/:key/priority.
func (h *ComplaintHandler) OverrideComplaintPriorityHandler(c *gin.Context) {
	session, _ := currentSession(c)
	var req complaint.PriorityOverride
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.Service.OverridePriority(c.Request.Context(), c.Param("key"), req, adminEmail(session))
	if err != nil {
		h.writeError(c, "failed to override complaint priority", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ComplaintSummaryHandler handles GET /api/admin/summary.
func (h *ComplaintHandler) ComplaintSummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, "failed to summarize complaints", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteComplaintHandler handles DELETE /api/admin/complaints/:key.
func (h *ComplaintHandler) DeleteComplaintHandler(c *gin.Context) {
	session, _ := currentSession(c)
	if err := h.Service.Delete(c.Request.Context(), c.Param("key"), adminEmail(session)); err != nil {
		h.writeError(c, "failed to delete complaint", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted"})
}

func (h *ComplaintHandler) writeError(c *gin.Context, msg string, err error) {
	var ve *complaint.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field, "code": ve.Code})
	case errors.Is(err, complaint.ErrComplaintNotFound):
		utils.JSONError(c, http.StatusNotFound, "Complaint not found", err)
	case errors.Is(err, complaint.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "You can only give feedback on your own complaints", err)
	case errors.Is(err, complaint.ErrSubmissionSuperseded):
		utils.JSONError(c, http.StatusConflict, "A newer complaint submission replaced this one", nil)
	case errors.Is(err, complaint.ErrSubmissionAbandoned):
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		utils.JSONError(c, http.StatusInternalServerError, msg, err)
	}
}

func adminEmail(session *models.Session) string {
	if session == nil {
		return ""
	}
	if session.Email != "" {
		return session.Email
	}
	return session.UserID
}
