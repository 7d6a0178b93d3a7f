package healthReportRepo

import (
	"context"
	"fmt"
	"sort"

	"jeevanrakshak/database"
	"jeevanrakshak/models"

	"firebase.google.com/go/v4/db"
)

const healthReportsPath = "healthReports"

type HealthReportRepository interface {
	Create(ctx context.Context, report models.HealthReport) (string, error)
	ListAll(ctx context.Context) ([]models.HealthReport, error)
	ListByUser(ctx context.Context, userID string) ([]models.HealthReport, error)
}

type firebaseHealthReportRepo struct {
	reports *db.Ref
}

// NewFirebaseHealthReportRepo returns a HealthReportRepository backed by the global realtime database.
func NewFirebaseHealthReportRepo() HealthReportRepository {
	return &firebaseHealthReportRepo{reports: database.RealtimeDB.NewRef(healthReportsPath)}
}

func (r *firebaseHealthReportRepo) Create(ctx context.Context, report models.HealthReport) (string, error) {
	report.Key = ""
	ref, err := r.reports.Push(ctx, report)
	if err != nil {
		return "", fmt.Errorf("failed to push health report: %w", err)
	}
	return ref.Key, nil
}

func (r *firebaseHealthReportRepo) ListAll(ctx context.Context) ([]models.HealthReport, error) {
	var byKey map[string]models.HealthReport
	if err := r.reports.Get(ctx, &byKey); err != nil {
		return nil, fmt.Errorf("failed to list health reports: %w", err)
	}
	return flatten(byKey), nil
}

// ListByUser needs ".indexOn": "userId" on /healthReports in the database rules.
func (r *firebaseHealthReportRepo) ListByUser(ctx context.Context, userID string) ([]models.HealthReport, error) {
	var byKey map[string]models.HealthReport
	if err := r.reports.OrderByChild("userId").EqualTo(userID).Get(ctx, &byKey); err != nil {
		return nil, fmt.Errorf("failed to list health reports for %s: %w", userID, err)
	}
	return flatten(byKey), nil
}

func flatten(byKey map[string]models.HealthReport) []models.HealthReport {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.HealthReport, 0, len(keys))
	for _, k := range keys {
		r := byKey[k]
		r.Key = k
		out = append(out, r)
	}
	return out
}
