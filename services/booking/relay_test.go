package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"karoo/models"
	"karoo/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pricedBookingFixture() models.PricedBooking {
	return models.PricedBooking{
		BookingRequest: models.BookingRequest{
			TourName:  "Kruger Safari",
			TourID:    "6543f0c2a1b2c3d4e5f60718",
			TourPrice: 100.00,
			DateFrom:  "2026-10-01",
			Adults:    2,
			Children:  1,
			Name:      "Thandi Nkosi",
			Email:     "thandi@example.com",
			Phone:     "+27115551234",
			Country:   "South Africa",
			Subject:   "Booking for Kruger Safari",
			Message:   "No additional message provided",
		},
		Total: 250.00,
	}
}

func TestBasinRelaySubmit(t *testing.T) {
	logger := zap.NewNop()

	t.Run("posts flattened booking fields as JSON", func(t *testing.T) {
		var gotBody map[string]any
		var gotContentType string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			gotContentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotBody))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		relay := booking.NewBasinRelay(server.URL, logger)
		receipt, err := relay.Submit(context.Background(), pricedBookingFixture())
		require.NoError(t, err)

		assert.JSONEq(t, `{"success":true}`, string(receipt))
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Kruger Safari", gotBody["tourName"])
		assert.Equal(t, "6543f0c2a1b2c3d4e5f60718", gotBody["tourId"])
		assert.Equal(t, "250.00", gotBody["total"])
		assert.Equal(t, float64(2), gotBody["adults"])
		assert.Equal(t, float64(1), gotBody["children"])
		assert.Equal(t, "+27115551234", gotBody["contact"])
	})

	t.Run("returns RelayError on non-2xx response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("relay exploded"))
		}))
		defer server.Close()

		relay := booking.NewBasinRelay(server.URL, logger)
		receipt, err := relay.Submit(context.Background(), pricedBookingFixture())
		require.Error(t, err)
		assert.Nil(t, receipt)

		var relayErr *booking.RelayError
		require.True(t, errors.As(err, &relayErr))
		assert.Equal(t, http.StatusInternalServerError, relayErr.Status)
		assert.Equal(t, "relay exploded", relayErr.Body)
	})

	t.Run("returns RelayError when the endpoint is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		relay := booking.NewBasinRelay(server.URL, logger)
		_, err := relay.Submit(context.Background(), pricedBookingFixture())
		require.Error(t, err)

		var relayErr *booking.RelayError
		require.True(t, errors.As(err, &relayErr))
		assert.Equal(t, 0, relayErr.Status)
	})
}
