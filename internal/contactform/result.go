package contactform

import "time"

// Outcome is the result class of a submission attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

const (
	successTitle   = "Message Sent!"
	successMessage = "Thank you for reaching out. I'll get back to you soon."
	failureTitle   = "Something went wrong"
	failureMessage = "Your message could not be sent. Please try again later."
)

// SubmissionResult is the transient notification produced when a submission resolves.
type SubmissionResult struct {
	ID           uint64
	Outcome      Outcome
	Title        string
	Message      string
	VisibleUntil time.Time
}

func newResult(outcome Outcome) SubmissionResult {
	if outcome == OutcomeSuccess {
		return SubmissionResult{Outcome: OutcomeSuccess, Title: successTitle, Message: successMessage}
	}
	return SubmissionResult{Outcome: OutcomeFailure, Title: failureTitle, Message: failureMessage}
}
