package complaint

import (
	"context"
	"testing"
	"time"

	"jeevanrakshak/models"
	"jeevanrakshak/services/access"
	"jeevanrakshak/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cannedGenerator string

func (g cannedGenerator) GenerateContent(context.Context, string) (string, error) {
	return string(g), nil
}

func TestCitizenOutbreakComplaintEndToEnd(t *testing.T) {
	repo := newMemoryRepo()
	classifier := intelligence.NewPriorityClassifier(cannedGenerator("HIGH"), time.Second, zap.NewNop())
	svc := newService(repo, classifier)

	req := validRequest()
	req.Type = "Health Alert"
	req.Description = "severe diarrhea outbreak, 10 hospitalized"
	req.Urgency = models.UrgencyUnset

	created, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, models.SourceModel, created.PrioritySource)

	stored, err := repo.GetByKey(context.Background(), created.Key)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, stored.Priority)

	resolver := access.NewResolver(access.DefaultLinkTable(""))
	nav := resolver.Resolve(true, models.RoleCitizen)
	require.Len(t, nav, 2)
	assert.Equal(t, models.SectionDashboard, nav[0].Name)
	assert.Equal(t, models.SectionCommunity, nav[1].Name)

	assert.True(t, resolver.Allows(true, models.RoleCitizen, "my-complaints"))
	assert.False(t, resolver.Allows(true, models.RoleCitizen, access.LinkComplaintManagement))

	mine, err := svc.ListMine(context.Background(), req.UserID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.Key, mine[0].Key)
}

func TestClassifierOutageStillStoresComplaint(t *testing.T) {
	repo := newMemoryRepo()
	classifier := intelligence.NewPriorityClassifier(nil, time.Second, zap.NewNop())
	svc := newService(repo, classifier)

	req := validRequest()
	req.Urgency = models.UrgencyCritical
	created, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, models.SourceFallback, created.PrioritySource)
	assert.Equal(t, 1, repo.count())
}
