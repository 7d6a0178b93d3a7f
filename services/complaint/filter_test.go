package complaint

import (
	"testing"

	"jeevanrakshak/models"

	"github.com/stretchr/testify/assert"
)

func fixtureComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "C1", Priority: models.PriorityLow, Status: models.StatusPending, CreatedAt: 100},
		{ID: "C2", Priority: models.PriorityHigh, Status: models.StatusResolved, CreatedAt: 300},
		{ID: "C3", Priority: models.PriorityMedium, Status: models.StatusInProgress, CreatedAt: 200},
		{ID: "C4", Priority: models.PriorityHigh, Status: models.StatusPending, CreatedAt: 50},
	}
}

func ids(list []models.Complaint) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestListOptions_Filter(t *testing.T) {
	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"C1", "C2", "C3", "C4"}},
		{"all", []string{"C1", "C2", "C3", "C4"}},
		{"priority-high", []string{"C2", "C4"}},
		{"priority-medium", []string{"C3"}},
		{"priority-low", []string{"C1"}},
		{"pending", []string{"C1", "C4"}},
		{"in-progress", []string{"C3"}},
		{"closed", []string{}},
	}
	for _, tt := range tests {
		got := ListOptions{Filter: tt.filter}.Apply(fixtureComplaints())
		assert.Equal(t, tt.want, ids(got), "filter %q", tt.filter)
	}
}

func TestListOptions_Sort(t *testing.T) {
	byDate := ListOptions{SortBy: "date"}.Apply(fixtureComplaints())
	assert.Equal(t, []string{"C2", "C3", "C1", "C4"}, ids(byDate))

	// Stable: equal priorities keep submission order.
	byPriority := ListOptions{SortBy: "priority"}.Apply(fixtureComplaints())
	assert.Equal(t, []string{"C2", "C4", "C3", "C1"}, ids(byPriority))

	combined := ListOptions{Filter: "pending", SortBy: "priority"}.Apply(fixtureComplaints())
	assert.Equal(t, []string{"C4", "C1"}, ids(combined))
}

func TestListOptions_DoesNotMutateInput(t *testing.T) {
	in := fixtureComplaints()
	ListOptions{SortBy: "date"}.Apply(in)
	assert.Equal(t, []string{"C1", "C2", "C3", "C4"}, ids(in))
}
