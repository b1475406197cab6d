package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/config"
	"github.com/spec-kit/portfolio-site/internal/contactform"
	"github.com/spec-kit/portfolio-site/internal/domain"
	"github.com/spec-kit/portfolio-site/internal/validation"
)

var (
	sendEndpoint string
	sendName     string
	sendEmail    string
	sendSubject  string
	sendMessage  string
	sendTimeout  time.Duration
	sendWait     bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a contact message",
	Long: `Validate and send a contact message to the portfolio's contact endpoint.

Exits non-zero when a field is invalid or the submission fails.`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendEndpoint, "endpoint", "",
		"Contact endpoint URL (default: $CONTACT_ENDPOINT_URL)")
	sendCmd.Flags().StringVar(&sendName, "name", "", "Your name")
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "Your email address")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Message subject")
	sendCmd.Flags().StringVar(&sendMessage, "message", "", "Message body")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 0,
		"Request timeout, 0 for none (default: $CONTACT_SUBMIT_TIMEOUT_SECONDS)")
	sendCmd.Flags().BoolVar(&sendWait, "wait", false,
		"Stay until the result notification is dismissed")
}

// sendOptions is everything one send needs.
type sendOptions struct {
	Endpoint             string
	Fields               contactform.Fields
	Timeout              time.Duration
	NotificationDuration time.Duration
	Wait                 bool
	Logger               *zap.Logger
}

func runSend(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := sendOptions{
		Endpoint: sendEndpoint,
		Fields: contactform.Fields{
			Name:    sendName,
			Email:   sendEmail,
			Subject: sendSubject,
			Message: sendMessage,
		},
		Timeout:              sendTimeout,
		NotificationDuration: cfg.Contact.NotificationDuration(),
		Wait:                 sendWait,
		Logger:               zap.NewNop(),
	}
	if opts.Endpoint == "" {
		opts.Endpoint = cfg.Contact.EndpointURL
	}
	if !cmd.Flags().Changed("timeout") {
		opts.Timeout = cfg.Contact.SubmitTimeout()
	}
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts.Logger = logger
			defer logger.Sync() //nolint:errcheck
		}
	}

	return sendContact(cmd.Context(), cmd.OutOrStdout(), opts)
}

// sendContact runs one submission through a Controller and prints each
// transition to out.
func sendContact(ctx context.Context, out io.Writer, opts sendOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		mu        sync.Mutex
		lastState contactform.State
		outcome   contactform.Outcome
		dismissed = make(chan struct{})
		once      sync.Once
	)
	onChange := func(snap contactform.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		if snap.State == lastState {
			return
		}
		switch snap.State {
		case contactform.StateSubmitting:
			fmt.Fprintln(out, snap.SubmitLabel)
		case contactform.StateResultShown:
			if snap.Result != nil {
				outcome = snap.Result.Outcome
				fmt.Fprintf(out, "%s %s\n", snap.Result.Title, snap.Result.Message)
			}
		case contactform.StateIdle:
			if lastState == contactform.StateResultShown {
				once.Do(func() { close(dismissed) })
			}
		}
		lastState = snap.State
	}

	ctrl := contactform.NewController(contactform.ControllerConfig{
		Submitter:            contactform.NewHTTPSubmitter(opts.Endpoint, nil, opts.Timeout),
		Clock:                contactform.SystemClock{},
		NotificationDuration: opts.NotificationDuration,
		Logger:               opts.Logger,
		OnChange:             onChange,
	})
	ctrl.SetFields(opts.Fields)

	if err := ctrl.Submit(ctx); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			printFieldErrors(out, fieldErrs)
			return errors.New("contact message is invalid")
		}
		return err
	}

	if err := ctrl.Wait(ctx); err != nil {
		return err
	}

	if opts.Wait {
		select {
		case <-dismissed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if outcome != contactform.OutcomeSuccess {
		return errors.New("contact message was not sent")
	}
	return nil
}

func printFieldErrors(out io.Writer, errs validation.FieldErrors) {
	for _, field := range domain.ContactFields {
		if err, ok := errs[field]; ok {
			fmt.Fprintf(out, "  %s: %s\n", field, err)
		}
	}
}
