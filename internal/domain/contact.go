package domain

import "time"

// ContactField names one of the four contact form inputs.
type ContactField string

const (
	ContactFieldName    ContactField = "name"
	ContactFieldEmail   ContactField = "email"
	ContactFieldSubject ContactField = "subject"
	ContactFieldMessage ContactField = "message"
)

// ContactFields lists the form inputs in display order.
var ContactFields = []ContactField{
	ContactFieldName,
	ContactFieldEmail,
	ContactFieldSubject,
	ContactFieldMessage,
}

// ContactMessage is a validated contact form payload. It is also the wire body
// posted to the contact endpoint.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSubmission is a ContactMessage received and stored by the site backend.
type ContactSubmission struct {
	ID        string
	Message   ContactMessage
	HashedIP  string
	UserAgent string
	CreatedAt time.Time
}
