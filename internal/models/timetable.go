package models

// TimetableEntry is one slot of a (program, section) timetable.
type TimetableEntry struct {
	ID      int64  `db:"id" json:"id"`
	Program string `db:"program" json:"program"`
	Section string `db:"section" json:"section"`
	Course  string `db:"course" json:"course"`
	Day     string `db:"day" json:"day"`
	Time    string `db:"time" json:"time"`
	Room    string `db:"room" json:"room"`
}
