// Package fcm delivers push notifications about job status changes via
// Firebase Cloud Messaging. The push token is resolved per send, and a
// token FCM reports as unregistered is forgotten so the next send does
// not hit the same dead endpoint.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
)

// DefaultEndpoint is the FCM legacy HTTP send endpoint.
const DefaultEndpoint = "https://fcm.googleapis.com/fcm/send"

const errorUnregistered = "NotRegistered"

// tokenStore resolves and maintains push tokens. Satisfied by the user
// repository.
type tokenStore interface {
	GetFcmToken(ctx context.Context, userID kernel.UUID) (string, error)
	ClearInvalidFcmToken(ctx context.Context, token string) error
}

// Dispatcher implements ports.NotificationDispatcher over the FCM HTTP
// API.
type Dispatcher struct {
	client    *http.Client
	endpoint  string
	serverKey string
	tokens    tokenStore
}

// NewDispatcher creates a dispatcher. A nil client falls back to a
// default with a short timeout, matching the best-effort nature of
// notifications.
func NewDispatcher(client *http.Client, endpoint, serverKey string, tokens tokenStore) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Dispatcher{
		client:    client,
		endpoint:  endpoint,
		serverKey: serverKey,
		tokens:    tokens,
	}
}

type sendRequest struct {
	To           string           `json:"to"`
	Notification sendNotification `json:"notification"`
	Data         map[string]string `json:"data"`
}

type sendNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendResponse struct {
	Success int `json:"success"`
	Results []struct {
		Error string `json:"error"`
	} `json:"results"`
}

// SendJobStatusNotification notifies the recipient that the job reached
// the given status. A recipient without a registered token is not an
// error; the notification is simply skipped.
func (d *Dispatcher) SendJobStatusNotification(
	ctx context.Context,
	recipientID kernel.UUID,
	jobID kernel.UUID,
	status job.Status,
) error {
	token, err := d.tokens.GetFcmToken(ctx, recipientID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			zap.L().Debug("recipient has no push token, skipping notification",
				zap.String("recipient_id", recipientID.String()),
				zap.String("job_id", jobID.String()))
			return nil
		}
		return err
	}

	payload := sendRequest{
		To: token,
		Notification: sendNotification{
			Title: "Move update",
			Body:  notificationBody(status),
		},
		Data: map[string]string{
			"job_id": jobID.String(),
			"status": status.String(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+d.serverKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm send returned status %d", resp.StatusCode)
	}

	var result sendResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return err
	}

	for _, r := range result.Results {
		if r.Error == errorUnregistered {
			zap.L().Info("push token unregistered, forgetting it",
				zap.String("recipient_id", recipientID.String()))
			if clearErr := d.tokens.ClearInvalidFcmToken(ctx, token); clearErr != nil {
				zap.L().Warn("failed to clear unregistered push token",
					zap.Error(clearErr))
			}
			return nil
		}
		if r.Error != "" {
			return fmt.Errorf("fcm send failed: %s", r.Error)
		}
	}

	return nil
}

func notificationBody(status job.Status) string {
	switch status {
	case job.StatusAccepted:
		return "A mover accepted your job."
	case job.StatusPickedUp:
		return "Your boxes were picked up."
	case job.StatusAwaitingStudentConfirmation:
		return "Your mover has arrived. Please confirm the handover."
	case job.StatusCompleted:
		return "Your job is complete."
	case job.StatusCancelled:
		return "A job was cancelled."
	default:
		return fmt.Sprintf("Your job is now %s.", status)
	}
}
