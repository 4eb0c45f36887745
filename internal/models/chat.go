package models

// AskRequest is the chatbot query payload. Program and section scope
// the timetable intent only.
type AskRequest struct {
	Query   string `json:"query" validate:"required"`
	Program string `json:"program"`
	Section string `json:"section"`
}

// AskResponse carries the chatbot reply. The chat path always answers
// with some reply text; only store failures surface as errors.
type AskResponse struct {
	Reply string `json:"reply"`
}
