package entity

import (
	"strings"
	"time"
)

// Role is the canonical role identity used for workflow routing.
type Role string

const (
	RoleEmployee               Role = "employee"
	RoleResponsableRH          Role = "responsable_rh"
	RoleResponsableRecrutement Role = "responsable_recrutement"
	RoleDRH                    Role = "drh"
	RolePlantManager           Role = "plant_manager"

	// RoleUnknown marks an actor whose role could not be resolved.
	RoleUnknown Role = ""
)

// legacyRoles maps role strings as they are stored in the users table to
// canonical roles. The stored values predate this service and include the
// "plant manger" misspelling; it is kept here as data compatibility so the
// typo never leaks into code identifiers.
var legacyRoles = map[string]Role{
	"responsable rh":          RoleResponsableRH,
	"responsable recrutement": RoleResponsableRecrutement,
	"drh":                     RoleDRH,
	"plant manger":            RolePlantManager,
	"plant manager":           RolePlantManager,
}

// legacyNames is the reverse view: the stored spellings to query for each
// canonical role, in the order they should match.
var legacyNames = map[Role][]string{
	RoleResponsableRH:          {"responsable rh"},
	RoleResponsableRecrutement: {"responsable recrutement"},
	RoleDRH:                    {"drh"},
	RolePlantManager:           {"plant manger", "plant manager"},
}

// CanonicalRole resolves a stored role string to its canonical role.
// Unknown values map to RoleEmployee, the standard-requester role.
func CanonicalRole(stored string) Role {
	if role, ok := legacyRoles[strings.ToLower(strings.TrimSpace(stored))]; ok {
		return role
	}
	return RoleEmployee
}

// LegacyNames returns the stored spellings for a canonical role.
func LegacyNames(role Role) []string {
	return legacyNames[role]
}

// IsHRFamily reports whether a role routes its own hiring requests straight
// to the HR director stage.
func (r Role) IsHRFamily() bool {
	return r == RoleResponsableRH || r == RoleResponsableRecrutement || r == RoleDRH
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanonicalRole resolves the user's stored role string.
func (u *User) CanonicalRole() Role {
	return CanonicalRole(u.Role)
}
