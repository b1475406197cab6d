package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

// Submitter delivers a validated message to the contact endpoint.
type Submitter interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, msg domain.ContactMessage) error

func (f SubmitterFunc) Submit(ctx context.Context, msg domain.ContactMessage) error {
	return f(ctx, msg)
}

// SubmissionError is returned for any failed delivery: transport error,
// timeout or non-2xx status.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact submission failed: %v", e.Err)
	}
	return fmt.Sprintf("contact submission failed: status %d", e.StatusCode)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// HTTPSubmitter posts the message as JSON to a fixed endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// NewHTTPSubmitter constructs a submitter. A zero timeout leaves deadlines to
// the client and the caller's context.
func NewHTTPSubmitter(endpoint string, client *http.Client, timeout time.Duration) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{endpoint: endpoint, client: client, timeout: timeout}
}

// Submit performs exactly one POST; there is no retry.
func (s *HTTPSubmitter) Submit(ctx context.Context, msg domain.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return &SubmissionError{Err: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &SubmissionError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SubmissionError{StatusCode: resp.StatusCode}
	}
	return nil
}
