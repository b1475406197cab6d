package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/contactform"
)

func validFields() contactform.Fields {
	return contactform.Fields{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Test message",
	}
}

// TestSendContact covers the success, failure and invalid paths end to end.
func TestSendContact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		fields     contactform.Fields
		wait       bool
		wantErr    bool
		wantOutput []string
		wantCalls  int
	}{
		{
			name:       "success",
			status:     http.StatusCreated,
			fields:     validFields(),
			wantOutput: []string{"Sending...", "Message Sent!"},
			wantCalls:  1,
		},
		{
			name:       "success and wait for dismissal",
			status:     http.StatusOK,
			fields:     validFields(),
			wait:       true,
			wantOutput: []string{"Sending...", "Message Sent!"},
			wantCalls:  1,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			fields:     validFields(),
			wantErr:    true,
			wantOutput: []string{"Sending...", "Something went wrong"},
			wantCalls:  1,
		},
		{
			name:       "invalid fields",
			status:     http.StatusOK,
			fields:     contactform.Fields{Email: "nope"},
			wantErr:    true,
			wantOutput: []string{"name: Name is required", "email: Email is invalid"},
			wantCalls:  0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calls := make(chan map[string]string, 2)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)
				calls <- body
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			var out bytes.Buffer
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := sendContact(ctx, &out, sendOptions{
				Endpoint:             server.URL,
				Fields:               tc.fields,
				NotificationDuration: 20 * time.Millisecond,
				Wait:                 tc.wait,
				Logger:               zap.NewNop(),
			})
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tc.wantOutput {
				require.Contains(t, out.String(), want)
			}
			require.Len(t, calls, tc.wantCalls)
			if tc.wantCalls > 0 {
				body := <-calls
				require.Equal(t, "ada@example.com", body["email"])
			}
		})
	}
}
