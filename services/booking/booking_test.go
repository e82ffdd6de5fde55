package booking_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"karoo/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(relayURL string) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{
		Relay:   booking.NewBasinRelay(relayURL, zap.NewNop()),
		Gateway: gatewayFixture(),
		Logger:  zap.NewNop(),
	}
}

func TestSubmitBooking(t *testing.T) {
	t.Run("returns a redirect carrying the computed total", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		redirect, err := newService(server.URL).SubmitBooking(context.Background(), validSubmission())
		require.NoError(t, err)

		parsed, err := url.Parse(redirect)
		require.NoError(t, err)
		query := parsed.Query()
		// adults=2, children=1, price=100.00 -> 250.00
		assert.Equal(t, "250.00", query.Get("amount"))
		assert.Equal(t, "Booking for Kruger Safari", query.Get("item_name"))
	})

	t.Run("does not build a redirect when the relay fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("storage unavailable"))
		}))
		defer server.Close()

		redirect, err := newService(server.URL).SubmitBooking(context.Background(), validSubmission())
		require.Error(t, err)
		assert.Empty(t, redirect)

		var relayErr *booking.RelayError
		require.True(t, errors.As(err, &relayErr))
		assert.Equal(t, http.StatusInternalServerError, relayErr.Status)
	})

	t.Run("does not call the relay when validation fails", func(t *testing.T) {
		var relayCalls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&relayCalls, 1)
		}))
		defer server.Close()

		raw := validSubmission()
		delete(raw, "email")

		redirect, err := newService(server.URL).SubmitBooking(context.Background(), raw)
		require.Error(t, err)
		assert.Empty(t, redirect)
		assert.Zero(t, atomic.LoadInt64(&relayCalls))

		var validationErr *booking.ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}
