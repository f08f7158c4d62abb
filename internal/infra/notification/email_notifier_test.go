package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sensorysearch/config"
	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, endpoint string) service.SubmissionNotifier {
	t.Helper()

	cfg := &config.Config{
		Notification: &config.NotificationConfig{
			Endpoint:    endpoint,
			APIKey:      "test-key",
			FromAddress: "no-reply@sensorysearch.example.com",
			AdminEmail:  "moderation@sensorysearch.example.com",
		},
	}

	notifier, err := NewEmailNotifier(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return notifier
}

func TestEmailNotifier_NotifySubmissionReceived(t *testing.T) {
	var received emailMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := newTestNotifier(t, server.URL)
	submission := &entity.Submission{
		ID:             uuid.New(),
		Type:           entity.SubmissionVenue,
		OrganizerEmail: "owner@example.com",
	}

	err := notifier.NotifySubmissionReceived(context.Background(), submission)
	require.NoError(t, err)

	// Moderation mail goes to the admin inbox, not the organizer.
	assert.Equal(t, "moderation@sensorysearch.example.com", received.To)
	assert.Equal(t, "no-reply@sensorysearch.example.com", received.From)
	assert.Contains(t, received.Subject, "venue")
}

func TestEmailNotifier_NotifyRejected_IncludesReason(t *testing.T) {
	var received emailMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := newTestNotifier(t, server.URL)
	submission := &entity.Submission{
		ID:             uuid.New(),
		Type:           entity.SubmissionEvent,
		OrganizerEmail: "owner@example.com",
	}

	err := notifier.NotifyRejected(context.Background(), submission, "duplicate listing")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", received.To)
	assert.Contains(t, received.Text, "duplicate listing")
}

func TestEmailNotifier_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := newTestNotifier(t, server.URL)
	submission := &entity.Submission{
		ID:             uuid.New(),
		Type:           entity.SubmissionVenue,
		OrganizerEmail: "owner@example.com",
	}

	err := notifier.NotifyApproved(context.Background(), submission)
	assert.Error(t, err)
}

func TestEmailNotifier_MissingConfig(t *testing.T) {
	_, err := NewEmailNotifier(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
