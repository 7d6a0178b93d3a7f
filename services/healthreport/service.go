package healthreport

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	healthReportRepo "jeevanrakshak/database/repository/healthreport"
	"jeevanrakshak/models"

	"go.uber.org/zap"
)

type HealthReportService interface {
	Submit(ctx context.Context, report models.HealthReport) (*models.HealthReport, error)
	ListMine(ctx context.Context, userID string) ([]models.HealthReport, error)
	ListAll(ctx context.Context) ([]models.HealthReport, error)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

type DefaultHealthReportService struct {
	Repo   healthReportRepo.HealthReportRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *DefaultHealthReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultHealthReportService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// Submit validates and stores a field report filed by an ASHA worker.
func (s *DefaultHealthReportService) Submit(ctx context.Context, report models.HealthReport) (*models.HealthReport, error) {
	if err := validate(report); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	report.SubmittedAt = now.Format(time.RFC3339)
	report.SubmittedDate = now.Format("2006-01-02")
	if report.ReportDate == "" {
		report.ReportDate = report.SubmittedDate
	}

	key, err := s.Repo.Create(ctx, report)
	if err != nil {
		return nil, err
	}
	report.Key = key

	s.logger().Info("health report submitted",
		zap.String("key", key),
		zap.String("userId", report.UserID),
		zap.String("village", report.VillageName),
		zap.Int("symptoms", len(report.ReportedSymptoms)),
	)
	return &report, nil
}

func validate(r models.HealthReport) error {
	switch {
	case r.UserID == "":
		return &ValidationError{Field: "userId", Message: "user not authenticated"}
	case strings.TrimSpace(r.VillageName) == "":
		return &ValidationError{Field: "villageName", Message: "village name is required"}
	case r.PatientAgeGroup == "":
		return &ValidationError{Field: "patientAgeGroup", Message: "patient age group is required"}
	case len(r.ReportedSymptoms) == 0:
		return &ValidationError{Field: "reportedSymptoms", Message: "at least one symptom must be selected"}
	case strings.TrimSpace(r.ReporterName) == "":
		return &ValidationError{Field: "reporterName", Message: "reporter name is required"}
	case strings.TrimSpace(r.ReporterContact) == "":
		return &ValidationError{Field: "reporterContact", Message: "contact number is required"}
	}
	return nil
}

func (s *DefaultHealthReportService) ListMine(ctx context.Context, userID string) ([]models.HealthReport, error) {
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newestFirst(list), nil
}

func (s *DefaultHealthReportService) ListAll(ctx context.Context) ([]models.HealthReport, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return newestFirst(list), nil
}

func newestFirst(list []models.HealthReport) []models.HealthReport {
	sort.SliceStable(list, func(i, j int) bool { return list[i].SubmittedAt > list[j].SubmittedAt })
	return list
}
