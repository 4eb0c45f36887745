package models

// Event is a campus event visible to every role.
type Event struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Date        string  `db:"date" json:"date"`
	Description *string `db:"description" json:"description,omitempty"`
}
