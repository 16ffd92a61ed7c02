package contact

import "time"

// Status is the submission lifecycle state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
)

// Field names, shared by the state machine, the validator, and the error map.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldMessage = "message"
	FieldCompany = "company" // honeypot, hidden from legitimate users
	FieldCaptcha = "captcha"
)

// Submission is one contact form payload. Company is the honeypot: a
// non-empty value marks the submission as automated.
type Submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Company string `json:"company,omitempty"`
}

// Lead is a persisted contact submission.
type Lead struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	SourcePage string    `json:"source_page,omitempty"`
	Status     string    `json:"status"`
}
