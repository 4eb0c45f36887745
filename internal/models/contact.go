package models

// Contact is a faculty contact entry.
type Contact struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Department string `db:"department" json:"department"`
	Email      string `db:"email" json:"email"`
}
