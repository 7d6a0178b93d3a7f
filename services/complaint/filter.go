package complaint

import (
	"sort"
	"strings"

	"jeevanrakshak/models"
)

// ListOptions mirrors the filter and sort controls of the complaint views.
//
// Filter is "all" (or empty), "priority-high", "priority-medium",
// "priority-low", or a status name. SortBy is "date" (newest first),
// "priority" (High first) or empty to keep submission order.
type ListOptions struct {
	Filter string `form:"filter"`
	SortBy string `form:"sortBy"`
}

func (o ListOptions) Apply(list []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, 0, len(list))
	for _, c := range list {
		if o.matches(c) {
			out = append(out, c)
		}
	}

	switch o.SortBy {
	case "date":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	case "priority":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority.Rank() > out[j].Priority.Rank() })
	}
	return out
}

func (o ListOptions) matches(c models.Complaint) bool {
	filter := strings.ToLower(strings.TrimSpace(o.Filter))
	switch {
	case filter == "" || filter == "all":
		return true
	case strings.HasPrefix(filter, "priority-"):
		return strings.EqualFold(string(c.Priority), strings.TrimPrefix(filter, "priority-"))
	default:
		return strings.EqualFold(string(c.Status), filter)
	}
}
