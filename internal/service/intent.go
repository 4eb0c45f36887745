package service

import "strings"

// Intent identifies which campus data source answers a chat query.
type Intent string

const (
	IntentTimetable Intent = "timetable"
	IntentExam      Intent = "exam"
	IntentFaculty   Intent = "faculty"
	IntentEvent     Intent = "event"
	IntentNote      Intent = "note"
	IntentUnknown   Intent = "unknown"
)

// intentKeywords is checked in order. A query mentioning several
// topics resolves to the first match, so "exam schedule" lands on
// timetable because "schedule" is a timetable keyword.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentTimetable, []string{"timetable", "schedule", "class"}},
	{IntentExam, []string{"exam"}},
	{IntentFaculty, []string{"faculty", "professor", "contact"}},
	{IntentEvent, []string{"event"}},
	{IntentNote, []string{"note"}},
}

// ClassifyIntent maps a free-text query to an intent by substring
// match on the lowercased query.
func ClassifyIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.intent
			}
		}
	}
	return IntentUnknown
}

// noteStopWords are filler words removed when extracting a course
// name from a note query.
var noteStopWords = map[string]bool{
	"notes": true, "note": true, "provide": true, "me": true,
	"with": true, "for": true, "on": true, "get": true,
	"can": true, "i": true, "have": true, "give": true,
	"please": true, "a": true, "the": true, "of": true,
	"want": true, "need": true,
}

// CourseFragment strips stop words from a note query and returns the
// leftover words joined as the course search fragment. "give me notes
// on physics" yields "physics".
func CourseFragment(query string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		word = strings.Trim(word, ".,!?")
		if word == "" || noteStopWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
