package constants

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Pesan error otorisasi (kontrak API lama, jangan diubah)
const (
	ErrAdminOnly     = "Access denied. Admin only."
	ErrNotAuthorized = "Access denied. Not authorized."
)

var AllRoles = []string{
	RoleUser,
	RoleAdmin,
}
