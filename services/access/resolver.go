// Package access decides which navigation sections and links a caller may see.
// The same decision backs the HTTP route guards, so a link that is not shown
// cannot be reached either.
package access

import "jeevanrakshak/models"

// linkFilter keeps the links of one section for one role.
type linkFilter func(models.NavigationLink) bool

// Resolver prunes a static link table per role. It is safe for concurrent use;
// the table is copied at construction and never mutated.
type Resolver struct {
	table []models.NavigationSection
}

// NewResolver builds a resolver over a private copy of table.
func NewResolver(table []models.NavigationSection) *Resolver {
	return &Resolver{table: cloneSections(table)}
}

// Resolve returns the sections visible to the caller, in table order, with
// empty sections dropped. Unauthenticated callers only get the login link.
// An authenticated caller without a usable role is treated as a citizen.
func (r *Resolver) Resolve(isAuthenticated bool, role models.Role) []models.NavigationSection {
	if !isAuthenticated {
		return r.loginOnly()
	}

	rules := rulesFor(role)
	out := make([]models.NavigationSection, 0, len(rules))
	for _, section := range r.table {
		keep, ok := rules[section.Name]
		if !ok {
			continue
		}
		links := make([]models.NavigationLink, 0, len(section.Links))
		for _, link := range section.Links {
			if keep(link) {
				links = append(links, cloneLink(link))
			}
		}
		if len(links) == 0 {
			continue
		}
		out = append(out, models.NavigationSection{Name: section.Name, Links: links})
	}
	return out
}

// Allows reports whether the caller may open the named link. The login link
// is always reachable.
func (r *Resolver) Allows(isAuthenticated bool, role models.Role, linkName string) bool {
	if linkName == LinkLogin {
		return true
	}
	for _, section := range r.Resolve(isAuthenticated, role) {
		for _, link := range section.Links {
			if link.Name == linkName {
				return true
			}
		}
	}
	return false
}

func (r *Resolver) loginOnly() []models.NavigationSection {
	for _, section := range r.table {
		for _, link := range section.Links {
			if link.Name == LinkLogin {
				return []models.NavigationSection{{Name: section.Name, Links: []models.NavigationLink{cloneLink(link)}}}
			}
		}
	}
	return []models.NavigationSection{{
		Name:  models.SectionAdministration,
		Links: []models.NavigationLink{{Name: LinkLogin}},
	}}
}

// rulesFor maps each visible section to its link filter. Sections missing
// from the map are hidden.
func rulesFor(role models.Role) map[string]linkFilter {
	switch role {
	case models.RoleAdmin:
		adminOrCommon := func(l models.NavigationLink) bool { return l.Untagged() || l.OwnedBy(models.RoleAdmin) }
		all := func(models.NavigationLink) bool { return true }
		return map[string]linkFilter{
			models.SectionDashboard:        adminOrCommon,
			models.SectionGISMapping:       func(l models.NavigationLink) bool { return l.OwnedBy(models.RoleAdmin) },
			models.SectionHealthMonitoring: adminOrCommon,
			models.SectionAdministration:   func(l models.NavigationLink) bool { return l.Name == LinkComplaintManagement },
			models.SectionApps:             all,
		}
	case models.RoleAshaWorker:
		ashaOnly := func(l models.NavigationLink) bool { return l.OwnedBy(models.RoleAshaWorker) }
		return map[string]linkFilter{
			models.SectionDashboard:        ashaOnly,
			models.SectionHealthMonitoring: ashaOnly,
		}
	default:
		return map[string]linkFilter{
			models.SectionDashboard: func(l models.NavigationLink) bool { return l.OwnedBy(models.RoleCitizen) },
			models.SectionCommunity: func(l models.NavigationLink) bool {
				return l.Name != LinkViewAllComplaints && l.Name != LinkComplaintManagement
			},
		}
	}
}

func cloneSections(in []models.NavigationSection) []models.NavigationSection {
	out := make([]models.NavigationSection, len(in))
	for i, s := range in {
		links := make([]models.NavigationLink, len(s.Links))
		for j, l := range s.Links {
			links[j] = cloneLink(l)
		}
		out[i] = models.NavigationSection{Name: s.Name, Links: links}
	}
	return out
}

func cloneLink(l models.NavigationLink) models.NavigationLink {
	if l.Role != nil {
		role := *l.Role
		l.Role = &role
	}
	return l
}
