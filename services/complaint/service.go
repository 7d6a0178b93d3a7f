package complaint

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	complaintRepo "jeevanrakshak/database/repository/complaint"
	"jeevanrakshak/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageCleanupTimeout = 30 * time.Second

type DefaultComplaintService struct {
	Repo       complaintRepo.ComplaintRepository
	Classifier Classifier
	// Images is optional; without it photos are rejected.
	Images  ImageStore
	Tracker *SubmissionTracker
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s *DefaultComplaintService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultComplaintService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// Submit classifies and stores a new complaint. The priority is assigned here,
// once, before the record exists. Nothing is written if the caller abandons the
// request or submits again before classification completes.
func (s *DefaultComplaintService) Submit(ctx context.Context, req SubmitRequest) (*models.Complaint, error) {
	if err := validateSubmit(req); err != nil {
		return nil, err
	}
	if req.Image != nil && s.Images == nil {
		return nil, NewValidationError("image", "image uploads are not enabled")
	}

	id, subCtx := s.Tracker.Begin(ctx, req.UserID)
	committed := false
	defer func() {
		if !committed {
			s.Tracker.Finish(req.UserID, id)
		}
	}()

	input := models.ComplaintInput{
		Type:        strings.TrimSpace(req.Type),
		Zone:        strings.TrimSpace(req.Zone),
		Address:     strings.TrimSpace(req.Address),
		Description: strings.TrimSpace(req.Description),
		UserUrgency: req.Urgency,
	}
	result := s.Classifier.Classify(subCtx, input)

	var imageURL, imageName string
	if req.Image != nil && subCtx.Err() == nil {
		name := imageObjectName(s.now(), req.Image.Filename)
		url, err := s.Images.UploadComplaintImage(subCtx, name, req.Image.Data, req.Image.ContentType)
		switch {
		case err == nil:
			imageURL, imageName = url, name
		case subCtx.Err() == nil:
			return nil, fmt.Errorf("failed to upload complaint image: %w", err)
		}
	}

	current := s.Tracker.Finish(req.UserID, id)
	committed = true
	if ctx.Err() != nil {
		s.logger().Info("dropping abandoned complaint submission", zap.String("userId", req.UserID), zap.String("submission", id))
		s.discardImage(ctx, imageName)
		return nil, ErrSubmissionAbandoned
	}
	if !current {
		s.logger().Info("dropping superseded complaint submission", zap.String("userId", req.UserID), zap.String("submission", id))
		s.discardImage(ctx, imageName)
		return nil, ErrSubmissionSuperseded
	}

	now := s.now()
	complaint := models.Complaint{
		ID:             fmt.Sprintf("C%d", now.UnixMilli()),
		UserID:         req.UserID,
		UserEmail:      req.UserEmail,
		Name:           strings.TrimSpace(req.Name),
		Phone:          strings.TrimSpace(req.Phone),
		Zone:           input.Zone,
		Address:        input.Address,
		Type:           input.Type,
		Description:    input.Description,
		UserUrgency:    req.Urgency,
		Priority:       result.Priority,
		PrioritySource: result.Source,
		ImageURL:       imageURL,
		ImageName:      imageName,
		Status:         models.StatusPending,
		Date:           now.UTC().Format(time.RFC3339),
		CreatedAt:      now.UnixMilli(),
	}

	key, err := s.Repo.Create(ctx, complaint)
	if err != nil {
		s.discardImage(ctx, imageName)
		return nil, err
	}
	complaint.Key = key

	s.logger().Info("complaint submitted",
		zap.String("key", key),
		zap.String("userId", req.UserID),
		zap.String("priority", string(result.Priority)),
		zap.String("source", string(result.Source)),
	)
	return &complaint, nil
}

// imageObjectName names the stored photo. Only the last element of the client's
// filename is kept so the timestamp and random suffix always survive.
func imageObjectName(at time.Time, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" {
		base = "image"
	}
	return fmt.Sprintf("%d_%s_%s", at.UnixMilli(), uuid.NewString()[:8], base)
}

// discardImage removes a photo whose complaint was never stored.
func (s *DefaultComplaintService) discardImage(ctx context.Context, name string) {
	if name == "" {
		return
	}
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), imageCleanupTimeout)
	defer cancel()
	if err := s.Images.DeleteComplaintImage(cleanupCtx, name); err != nil {
		s.logger().Warn("failed to remove orphaned complaint image", zap.String("image", name), zap.Error(err))
	}
}

func validateSubmit(req SubmitRequest) error {
	if req.UserID == "" {
		return NewValidationError("userId", "please login to submit a complaint")
	}
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"zone", req.Zone},
		{"address", req.Address},
		{"complaintType", req.Type},
		{"description", req.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "please fill in all required fields")
		}
	}
	return nil
}

func (s *DefaultComplaintService) ListMine(ctx context.Context, userID string, opts ListOptions) ([]models.Complaint, error) {
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return opts.Apply(list), nil
}

func (s *DefaultComplaintService) ListAll(ctx context.Context, opts ListOptions) ([]models.Complaint, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return opts.Apply(list), nil
}

// UpdateStatus records an administrator's triage decision. It never touches the priority.
func (s *DefaultComplaintService) UpdateStatus(ctx context.Context, key string, update StatusUpdate, adminEmail string) (*models.Complaint, error) {
	status, ok := models.ParseComplaintStatus(update.Status)
	if !ok {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", update.Status))
	}

	fields := map[string]interface{}{
		"status":      string(status),
		"adminNotes":  update.AdminNotes,
		"lastUpdated": s.now().UTC().Format(time.RFC3339),
		"updatedBy":   adminEmail,
	}
	if err := s.Repo.Update(ctx, key, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByKey(ctx, key)
}

// OverridePriority is the only way a priority changes after creation. Every
// change leaves an audit entry.
func (s *DefaultComplaintService) OverridePriority(ctx context.Context, key string, req PriorityOverride, adminEmail string) (*models.Complaint, error) {
	priority, ok := models.ParsePriority(req.Priority)
	if !ok {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", req.Priority))
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, NewValidationError("reason", "a reason is required to override priority")
	}

	audit := models.PriorityAudit{
		ComplaintKey: key,
		To:           priority,
		By:           adminEmail,
		Reason:       strings.TrimSpace(req.Reason),
		At:           s.now().UTC().Format(time.RFC3339),
	}
	previous, err := s.Repo.OverridePriority(ctx, audit)
	if err != nil {
		return nil, err
	}

	s.logger().Info("complaint priority overridden",
		zap.String("key", key),
		zap.String("from", string(previous)),
		zap.String("to", string(priority)),
		zap.String("by", adminEmail),
	)
	return s.Repo.GetByKey(ctx, key)
}

func (s *DefaultComplaintService) SubmitFeedback(ctx context.Context, key, userID string, req FeedbackRequest) (*models.Complaint, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewValidationError("rating", "rating must be between 1 and 5")
	}

	complaint, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if complaint.UserID != userID {
		return nil, ErrNotOwner
	}

	now := s.now()
	feedback := models.ComplaintFeedback{
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
		SubmittedAt:   now.UnixMilli(),
		SubmittedDate: now.UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Update(ctx, key, map[string]interface{}{"feedback": feedback}); err != nil {
		return nil, err
	}
	complaint.Feedback = &feedback
	return complaint, nil
}

func (s *DefaultComplaintService) Summary(ctx context.Context) (*models.ComplaintSummary, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ComplaintSummary{Total: len(list)}
	for _, c := range list {
		switch strings.ToLower(string(c.Status)) {
		case "pending":
			summary.Pending++
		case "in-progress":
			summary.InProgress++
		case "resolved":
			summary.Resolved++
		}
		if c.Priority == models.PriorityHigh {
			summary.HighPriority++
		}
	}
	return summary, nil
}

// Delete removes a complaint and its photo. Priority audit entries are kept.
func (s *DefaultComplaintService) Delete(ctx context.Context, key, adminEmail string) error {
	complaint, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, key); err != nil {
		return err
	}
	if complaint.ImageName != "" && s.Images != nil {
		if err := s.Images.DeleteComplaintImage(ctx, complaint.ImageName); err != nil {
			s.logger().Warn("failed to remove complaint image", zap.String("key", key), zap.String("image", complaint.ImageName), zap.Error(err))
		}
	}
	s.logger().Info("complaint deleted", zap.String("key", key), zap.String("by", adminEmail))
	return nil
}

// IsClientError reports whether err is caused by the request rather than the service.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
