package booking

import (
	"context"

	"go.uber.org/zap"
)

// BookingService drives a booking submission from raw form fields to a
// payment redirect URL.
type BookingService interface {
	SubmitBooking(ctx context.Context, raw map[string]any) (string, error)
}

// DefaultBookingService sequences the booking pipeline:
// validate -> price -> relay -> build redirect. Each stage is a discrete
// function; a failure at any stage aborts the remaining ones.
type DefaultBookingService struct {
	Relay   FormRelay
	Gateway Gateway
	Logger  *zap.Logger
}
