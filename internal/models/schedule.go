package models

// ExamSchedule is one entry of the campus-wide exam schedule.
// The table keeps its historical name "schedules".
type ExamSchedule struct {
	ID      int64   `db:"id" json:"id"`
	Subject string  `db:"subject" json:"subject"`
	Date    string  `db:"date" json:"date"`
	Details *string `db:"details" json:"details,omitempty"`
}
