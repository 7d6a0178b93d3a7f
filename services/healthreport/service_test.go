package healthreport

import (
	"context"
	"fmt"
	"testing"
	"time"

	"jeevanrakshak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	reports []models.HealthReport
}

func (r *memoryRepo) Create(_ context.Context, report models.HealthReport) (string, error) {
	key := fmt.Sprintf("-H%03d", len(r.reports)+1)
	report.Key = key
	r.reports = append(r.reports, report)
	return key, nil
}

func (r *memoryRepo) ListAll(context.Context) ([]models.HealthReport, error) {
	return append([]models.HealthReport(nil), r.reports...), nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID string) ([]models.HealthReport, error) {
	var out []models.HealthReport
	for _, rep := range r.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func validReport() models.HealthReport {
	return models.HealthReport{
		VillageName:      "Kalmeshwar",
		PatientAgeGroup:  "18-40",
		ReportedSymptoms: []string{"fever", "diarrhea"},
		ReporterName:     "Sunita",
		ReporterContact:  "9811111111",
		UserID:           "uid-asha",
		UserEmail:        "asha@example.org",
	}
}

func TestSubmit(t *testing.T) {
	repo := &memoryRepo{}
	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	svc := &DefaultHealthReportService{Repo: repo, Now: func() time.Time { return now }}

	got, err := svc.Submit(context.Background(), validReport())
	require.NoError(t, err)
	assert.Equal(t, "-H001", got.Key)
	assert.Equal(t, "2025-07-01T08:00:00Z", got.SubmittedAt)
	assert.Equal(t, "2025-07-01", got.SubmittedDate)
	assert.Equal(t, "2025-07-01", got.ReportDate)
}

func TestSubmit_Validation(t *testing.T) {
	cases := map[string]func(*models.HealthReport){
		"userId":           func(r *models.HealthReport) { r.UserID = "" },
		"villageName":      func(r *models.HealthReport) { r.VillageName = "  " },
		"patientAgeGroup":  func(r *models.HealthReport) { r.PatientAgeGroup = "" },
		"reportedSymptoms": func(r *models.HealthReport) { r.ReportedSymptoms = nil },
		"reporterName":     func(r *models.HealthReport) { r.ReporterName = "" },
		"reporterContact":  func(r *models.HealthReport) { r.ReporterContact = "" },
	}
	for field, mutate := range cases {
		repo := &memoryRepo{}
		svc := &DefaultHealthReportService{Repo: repo}
		r := validReport()
		mutate(&r)

		_, err := svc.Submit(context.Background(), r)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
		assert.Empty(t, repo.reports)
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo := &memoryRepo{}
	day := 0
	svc := &DefaultHealthReportService{Repo: repo, Now: func() time.Time {
		day++
		return time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
	}}

	for _, uid := range []string{"uid-asha", "uid-other", "uid-asha"} {
		r := validReport()
		r.UserID = uid
		_, err := svc.Submit(context.Background(), r)
		require.NoError(t, err)
	}

	mine, err := svc.ListMine(context.Background(), "uid-asha")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "-H003", mine[0].Key)
	assert.Equal(t, "-H001", mine[1].Key)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"-H003", "-H002", "-H001"}, []string{all[0].Key, all[1].Key, all[2].Key})
}
