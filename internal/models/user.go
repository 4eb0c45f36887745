package models

// UserRole is the role string compared at login. Roles are not
// enforced at the data layer.
type UserRole = string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User represents a row in the users table. Program and Section are
// populated for students only.
type User struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Email    string  `db:"email" json:"email"`
	Password string  `db:"password" json:"-"`
	Role     string  `db:"role" json:"role"`
	Program  *string `db:"program" json:"program,omitempty"`
	Section  *string `db:"section" json:"section,omitempty"`
}

// TeacherInfo is the projection of a teacher row exposed by the
// teacher management endpoints.
type TeacherInfo struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// SignupRequest is the payload for student self-registration.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Program  string `json:"program" validate:"required"`
	Section  string `json:"section" validate:"required"`
}

// LoginRequest is the payload for credential checks.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}
