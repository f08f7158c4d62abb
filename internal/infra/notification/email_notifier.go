// Package notification implements the SubmissionNotifier interface against
// a hosted transactional email API.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sensorysearch/config"
	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultEmailTimeout = 10 * time.Second

// Params holds dependencies for the email notifier, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type emailNotifier struct {
	endpoint    string
	apiKey      string
	fromAddress string
	adminEmail  string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewEmailNotifier creates a SubmissionNotifier backed by the configured
// email API.
func NewEmailNotifier(params Params) (service.SubmissionNotifier, error) {
	cfg := params.Config.Notification
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("notification configuration is missing")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultEmailTimeout
	}

	return &emailNotifier{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		fromAddress: cfg.FromAddress,
		adminEmail:  cfg.AdminEmail,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      params.Logger,
	}, nil
}

// emailMessage is the request body the email API expects.
type emailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// NotifySubmissionReceived tells the moderation team a new submission is
// waiting for review.
func (n *emailNotifier) NotifySubmissionReceived(ctx context.Context, submission *entity.Submission) error {
	subject := fmt.Sprintf("New %s submission awaiting review", submission.Type)
	body := fmt.Sprintf(
		"A new submission (%s) from %s is waiting in the moderation queue.",
		submission.ID, submission.OrganizerEmail,
	)

	return n.send(ctx, n.adminEmail, subject, body)
}

// NotifyApproved tells the organizer their submission went live.
func (n *emailNotifier) NotifyApproved(ctx context.Context, submission *entity.Submission) error {
	subject := "Your submission has been approved"
	body := fmt.Sprintf(
		"Good news! Your %s submission (%s) has been approved and is now listed.",
		submission.Type, submission.ID,
	)

	return n.send(ctx, submission.OrganizerEmail, subject, body)
}

// NotifyRejected tells the organizer their submission was declined.
func (n *emailNotifier) NotifyRejected(ctx context.Context, submission *entity.Submission, reason string) error {
	subject := "Your submission was not approved"
	body := fmt.Sprintf(
		"Unfortunately your %s submission (%s) was not approved.",
		submission.Type, submission.ID,
	)
	if reason != "" {
		body += "\n\nReviewer note: " + reason
	}

	return n.send(ctx, submission.OrganizerEmail, subject, body)
}

func (n *emailNotifier) send(ctx context.Context, to, subject, text string) error {
	if to == "" {
		return errors.New("email recipient is empty")
	}

	payload, err := json.Marshal(emailMessage{
		From:    n.fromAddress,
		To:      to,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("email API returned status %d", resp.StatusCode)
	}

	n.logger.Debug("notification email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
