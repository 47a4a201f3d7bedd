package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBarangay Role = "barangay"
)

type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
