package models

import "strings"

// Role is the access tier of the caller.
type Role int

const (
	RoleUnauthenticated Role = iota
	RoleCitizen
	RoleAshaWorker
	RoleAdmin
)

// Stored role claims, as written to users/{uid}/role.
const (
	RoleClaimCitizen    = "user"
	RoleClaimAshaWorker = "asha-worker"
	RoleClaimAdmin      = "admin"
)

// ParseRole maps a stored role claim to a Role. Unrecognized or empty claims
// map to RoleCitizen and ok is false so the caller can report the bad record.
func ParseRole(claim string) (role Role, ok bool) {
	switch strings.ToLower(strings.TrimSpace(claim)) {
	case RoleClaimAdmin:
		return RoleAdmin, true
	case RoleClaimAshaWorker:
		return RoleAshaWorker, true
	case RoleClaimCitizen, "citizen":
		return RoleCitizen, true
	default:
		return RoleCitizen, false
	}
}

// Claim returns the stored form of the role.
func (r Role) Claim() string {
	switch r {
	case RoleAdmin:
		return RoleClaimAdmin
	case RoleAshaWorker:
		return RoleClaimAshaWorker
	case RoleCitizen:
		return RoleClaimCitizen
	default:
		return ""
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleAshaWorker:
		return "AshaWorker"
	case RoleCitizen:
		return "Citizen"
	default:
		return "Unauthenticated"
	}
}
