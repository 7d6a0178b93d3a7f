package models

// Section names of the navigation tree.
const (
	SectionDashboard        = "Dashboard"
	SectionGISMapping       = "GIS-Mapping"
	SectionHealthMonitoring = "Health Monitoring"
	SectionAdministration   = "Administration"
	SectionApps             = "Apps"
	SectionCommunity        = "Community"
)

// NavigationSection groups links under a heading.
type NavigationSection struct {
	Name  string           `json:"name"`
	Links []NavigationLink `json:"links"`
}

// NavigationLink is a single route entry. Role, when set, is the only role
// that may see the link; URL is set for links that leave the dashboard.
type NavigationLink struct {
	Name string `json:"name"`
	Role *Role  `json:"-"`
	URL  string `json:"url,omitempty"`
}

// OwnedBy reports whether the link is tagged for r.
func (l NavigationLink) OwnedBy(r Role) bool {
	return l.Role != nil && *l.Role == r
}

// Untagged reports whether the link has no owning role.
func (l NavigationLink) Untagged() bool {
	return l.Role == nil
}
