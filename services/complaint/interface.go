package complaint

import (
	"context"
	"io"

	"jeevanrakshak/models"
)

// Classifier assigns a priority to a new complaint.
type Classifier interface {
	Classify(ctx context.Context, in models.ComplaintInput) models.ClassificationResult
}

// ImageStore keeps the photo attached to a complaint and returns its URL.
type ImageStore interface {
	UploadComplaintImage(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)
	DeleteComplaintImage(ctx context.Context, filename string) error
}

type ComplaintService interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.Complaint, error)
	ListMine(ctx context.Context, userID string, opts ListOptions) ([]models.Complaint, error)
	ListAll(ctx context.Context, opts ListOptions) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, key string, update StatusUpdate, adminEmail string) (*models.Complaint, error)
	OverridePriority(ctx context.Context, key string, req PriorityOverride, adminEmail string) (*models.Complaint, error)
	SubmitFeedback(ctx context.Context, key, userID string, feedback FeedbackRequest) (*models.Complaint, error)
	Summary(ctx context.Context) (*models.ComplaintSummary, error)
	Delete(ctx context.Context, key, adminEmail string) error
}

// ImageUpload is an optional photo sent with a complaint.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// SubmitRequest is a citizen's complaint form.
type SubmitRequest struct {
	UserID      string         `json:"-"`
	UserEmail   string         `json:"-"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Zone        string         `json:"zone"`
	Address     string         `json:"address"`
	Type        string         `json:"complaintType"`
	Description string         `json:"description"`
	Urgency     models.Urgency `json:"urgency"`
	Image       *ImageUpload   `json:"-"`
}

// StatusUpdate is what an administrator changes while triaging.
type StatusUpdate struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// PriorityOverride is the manual, audited priority change.
type PriorityOverride struct {
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// FeedbackRequest is the citizen's rating of how a complaint was handled.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
