package complaintRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"jeevanrakshak/models"

	"github.com/google/uuid"
)

// Create pushes a new complaint and returns the server-assigned key.
func (r *firebaseComplaintRepo) Create(ctx context.Context, complaint models.Complaint) (string, error) {
	complaint.Key = ""
	ref, err := r.complaints.Push(ctx, complaint)
	if err != nil {
		return "", fmt.Errorf("failed to push complaint: %w", err)
	}
	return ref.Key, nil
}

// GetByKey loads a single complaint.
func (r *firebaseComplaintRepo) GetByKey(ctx context.Context, key string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.complaints.Child(key).Get(ctx, &complaint); err != nil {
		return nil, fmt.Errorf("failed to get complaint %s: %w", key, err)
	}
	if complaint.ID == "" {
		return nil, ErrNotFound
	}
	complaint.Key = key
	return &complaint, nil
}

// ListAll returns every complaint in push order.
func (r *firebaseComplaintRepo) ListAll(ctx context.Context) ([]models.Complaint, error) {
	var byKey map[string]models.Complaint
	if err := r.complaints.Get(ctx, &byKey); err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return flatten(byKey), nil
}

// ListByUser returns the complaints filed by userID.
// Needs ".indexOn": "userId" on /complaints in the database rules.
func (r *firebaseComplaintRepo) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	var byKey map[string]models.Complaint
	if err := r.complaints.OrderByChild("userId").EqualTo(userID).Get(ctx, &byKey); err != nil {
		return nil, fmt.Errorf("failed to list complaints for %s: %w", userID, err)
	}
	return flatten(byKey), nil
}

func (r *firebaseComplaintRepo) Update(ctx context.Context, key string, fields map[string]interface{}) error {
	if _, err := r.GetByKey(ctx, key); err != nil {
		return err
	}
	if err := r.complaints.Child(key).Update(ctx, fields); err != nil {
		return fmt.Errorf("failed to update complaint %s: %w", key, err)
	}
	return nil
}

// OverridePriority reads the current priority and then writes the new one and
// the audit entry as a single multi-path update, so neither lands without the other.
func (r *firebaseComplaintRepo) OverridePriority(ctx context.Context, audit models.PriorityAudit) (models.Priority, error) {
	current, err := r.GetByKey(ctx, audit.ComplaintKey)
	if err != nil {
		return "", err
	}
	audit.From = current.Priority

	if err := r.root.Update(ctx, priorityOverrideUpdate(auditID(audit.At), audit)); err != nil {
		return "", fmt.Errorf("failed to override priority of complaint %s: %w", audit.ComplaintKey, err)
	}
	return current.Priority, nil
}

func (r *firebaseComplaintRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.GetByKey(ctx, key); err != nil {
		return err
	}
	if err := r.complaints.Child(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete complaint %s: %w", key, err)
	}
	return nil
}

// priorityOverrideUpdate is the multi-path payload relative to the database root.
func priorityOverrideUpdate(id string, audit models.PriorityAudit) map[string]interface{} {
	complaint := complaintsPath + "/" + audit.ComplaintKey
	return map[string]interface{}{
		complaint + "/priority":             string(audit.To),
		complaint + "/priorityOverriddenBy": audit.By,
		complaint + "/priorityOverriddenAt": audit.At,
		priorityAuditPath + "/" + audit.ComplaintKey + "/" + id: audit,
	}
}

// auditID sorts by override time like a push key would.
func auditID(at string) string {
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		ts = time.Now()
	}
	return fmt.Sprintf("%013d-%s", ts.UnixMilli(), uuid.NewString()[:8])
}

func flatten(byKey map[string]models.Complaint) []models.Complaint {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	// Push keys sort chronologically.
	sort.Strings(keys)

	out := make([]models.Complaint, 0, len(keys))
	for _, k := range keys {
		c := byKey[k]
		c.Key = k
		out = append(out, c)
	}
	return out
}
