package domain

import "time"

// SubmissionStatus is the triage state of a contact-form submission.
// Transitions are free-form: the back office may move a submission between
// any two states.
type SubmissionStatus string

const (
	SubmissionNew      SubmissionStatus = "new"
	SubmissionRead     SubmissionStatus = "read"
	SubmissionReplied  SubmissionStatus = "replied"
	SubmissionArchived SubmissionStatus = "archived"
)

// ValidSubmissionStatus reports whether s is a recognised triage state.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionNew, SubmissionRead, SubmissionReplied, SubmissionArchived:
		return true
	}
	return false
}

// Submission is a contact-form record awaiting human triage.
type Submission struct {
	ID        string           `json:"id"`
	Reference string           `json:"reference"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone,omitempty"`
	Service   string           `json:"service,omitempty"`
	Subject   string           `json:"subject,omitempty"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
