package dto

import (
	"time"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

// ContactRequest is the body posted by the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactCreatedResponse acknowledges a stored submission.
type ContactCreatedResponse struct {
	ID string `json:"id"`
}

// ContactMessageResponse is a stored submission as shown in the admin inbox.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageList is a page of submissions.
type ContactMessageList struct {
	Items  []ContactMessageResponse `json:"items"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// NewContactMessageResponse maps a submission.
func NewContactMessageResponse(sub domain.ContactSubmission) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        sub.ID,
		Name:      sub.Message.Name,
		Email:     sub.Message.Email,
		Subject:   sub.Message.Subject,
		Message:   sub.Message.Message,
		UserAgent: sub.UserAgent,
		CreatedAt: sub.CreatedAt,
	}
}
