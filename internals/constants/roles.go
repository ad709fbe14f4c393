package constants

import "fmt"

// Role slug yang disimpan di kolom user_role & claim JWT "role".
const (
	RoleAdmin   = "admin"
	RoleCaptain = "captain"
	RoleScorer  = "scorer"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess   = "Hanya admin atau scorer yang boleh mengakses fitur %s."
	ErrOnlyCaptainCanAccess = "Hanya captain yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorCaptain(feature string) string {
	return fmt.Sprintf(ErrOnlyCaptainCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCaptain,
		RoleScorer,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleScorer,
	}
)
