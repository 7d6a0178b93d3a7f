package access

import "jeevanrakshak/models"

// Link names that have rules of their own.
const (
	LinkLogin               = "login"
	LinkComplaintManagement = "complaint-management"
	LinkViewAllComplaints   = "view-all-complaints"
	LinkGISTracking         = "gis-tracking"
)

func owned(r models.Role) *models.Role {
	return &r
}

// DefaultLinkTable returns the navigation taxonomy of the dashboard. The GIS
// viewer is hosted separately; gisURL is where its entry point links to.
func DefaultLinkTable(gisURL string) []models.NavigationSection {
	admin := owned(models.RoleAdmin)
	asha := owned(models.RoleAshaWorker)
	citizen := owned(models.RoleCitizen)

	return []models.NavigationSection{
		{
			Name: models.SectionDashboard,
			Links: []models.NavigationLink{
				{Name: "dashboard", Role: admin},
				{Name: "user-dashboard", Role: citizen},
				{Name: "asha-dashboard", Role: asha},
				{Name: "water-quality"},
			},
		},
		{
			Name: models.SectionGISMapping,
			Links: []models.NavigationLink{
				{Name: LinkGISTracking, Role: admin, URL: gisURL},
			},
		},
		{
			Name: models.SectionHealthMonitoring,
			Links: []models.NavigationLink{
				{Name: "health-data", Role: asha},
				{Name: "submitted-health-reports", Role: asha},
				{Name: "portable-device-guide", Role: asha},
				{Name: "collected-health-data", Role: admin},
				{Name: "outbreak-risk", Role: admin},
				{Name: "water-sensors", Role: admin},
			},
		},
		{
			Name: models.SectionAdministration,
			Links: []models.NavigationLink{
				{Name: LinkLogin},
				{Name: LinkComplaintManagement, Role: admin},
			},
		},
		{
			Name: models.SectionApps,
			Links: []models.NavigationLink{
				{Name: "editor"},
				{Name: "sensor-allocation"},
				{Name: "color-picker"},
			},
		},
		{
			Name: models.SectionCommunity,
			Links: []models.NavigationLink{
				{Name: "submit-complaint"},
				{Name: "my-complaints"},
				{Name: "complaints-awareness"},
				{Name: LinkViewAllComplaints},
				{Name: LinkComplaintManagement, Role: admin},
			},
		},
	}
}
