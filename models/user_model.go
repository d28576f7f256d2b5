package models

type Role string

const (
	RoleTourist Role = "tourist"
	RoleAgent   Role = "agent"
)

// User role is authoritative from the backend, never assigned locally.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
