package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"karoo/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking intake pipeline and the payment
// gateway callback endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking accepts a booking submission (JSON or form-encoded) and
// responds with the payment redirect URL, or a 400 carrying the failure
// reason in the "error" field. Validation and relay failures both land on
// 400: in either case no booking record exists and the caller must retry.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	raw, err := bindBookingFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	redirect, err := h.Service.SubmitBooking(c.Request.Context(), raw)
	if err != nil {
		var validationErr *booking.ValidationError
		var relayErr *booking.RelayError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.As(err, &relayErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": relayErr.Error()})
		default:
			h.Logger.Error("Booking failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}

// Notify receives the gateway's asynchronous payment notification (ITN).
// The payload is logged and acknowledged unconditionally; nothing is
// verified or persisted. Real payment-state tracking would need signature
// verification, idempotent persistence keyed by the gateway transaction id,
// and correlation back to the booking via a token in notify_url.
func (h *BookingHandler) Notify(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		h.Logger.Warn("Failed to read ITN body", zap.Error(err))
	}
	h.Logger.Info("Payment ITN received",
		zap.String("contentType", c.ContentType()),
		zap.ByteString("payload", body))
	c.String(http.StatusOK, "OK")
}

// PaymentSuccess is the static acknowledgement page the gateway returns the
// customer to after a completed payment.
func (h *BookingHandler) PaymentSuccess(c *gin.Context) {
	c.String(http.StatusOK, "Payment successful! Thank you for booking.")
}

// PaymentCancel is the static page for abandoned payments.
func (h *BookingHandler) PaymentCancel(c *gin.Context) {
	c.String(http.StatusOK, "Payment cancelled.")
}

// bindBookingFields reads the submission into a loose key/value map. JSON
// and form-encoded bodies are both accepted; typing is the validator's job.
func bindBookingFields(c *gin.Context) (map[string]any, error) {
	if strings.Contains(c.ContentType(), "application/json") {
		raw := map[string]any{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	raw := make(map[string]any, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	return raw, nil
}
