package constants

import "fmt"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
	RoleMitra      = "mitra"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin atau superadmin yang boleh mengakses fitur %s."
	ErrOnlySuperadminCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleSuperadmin,
		RoleMitra,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
