package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"karoo/models"

	"go.uber.org/zap"
)

// FormRelay pushes a priced booking to an external form-collection endpoint
// so the submission is recorded outside this service.
type FormRelay interface {
	Submit(ctx context.Context, booking models.PricedBooking) (json.RawMessage, error)
}

// BasinRelay submits bookings to a Basin form endpoint.
type BasinRelay struct {
	Endpoint string
	Client   *http.Client
	Logger   *zap.Logger
}

// NewBasinRelay creates a BasinRelay with a bounded request timeout so a
// stalled relay cannot hold the booking request open indefinitely.
func NewBasinRelay(endpoint string, logger *zap.Logger) *BasinRelay {
	return &BasinRelay{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 8 * time.Second},
		Logger:   logger,
	}
}

// Submit posts the flattened booking fields as JSON. Any non-2xx response,
// timeout or transport failure yields a RelayError; there is no retry, the
// caller surfaces the failure to the user.
func (r *BasinRelay) Submit(ctx context.Context, booking models.PricedBooking) (json.RawMessage, error) {
	body, err := json.Marshal(relayPayload(booking))
	if err != nil {
		return nil, fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		r.Logger.Error("Relay request failed", zap.String("endpoint", r.Endpoint), zap.Error(err))
		return nil, &RelayError{Body: err.Error()}
	}
	defer resp.Body.Close()

	// Basin responses are small; the limit only guards against a misbehaving
	// endpoint streaming an unbounded body.
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.Logger.Error("Relay rejected booking",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, &RelayError{Status: resp.StatusCode, Body: string(respBody)}
	}

	r.Logger.Info("Relay submission successful", zap.ByteString("response", respBody))
	return respBody, nil
}

// relayPayload flattens a priced booking into the simple key/value shape the
// form relay stores. Field names match the original submission so relayed
// records read the same as the form the customer filled in.
func relayPayload(b models.PricedBooking) map[string]any {
	return map[string]any{
		"tourName":          b.TourName,
		"tourPrice":         b.TourPrice,
		"tourId":            b.TourID,
		"booking_date_from": b.DateFrom,
		"adults":            b.Adults,
		"children":          b.Children,
		"total":             FormatAmount(b.Total),
		"name":              b.Name,
		"email":             b.Email,
		"contact":           b.Phone,
		"country":           b.Country,
		"subject":           b.Subject,
		"message":           b.Message,
	}
}
