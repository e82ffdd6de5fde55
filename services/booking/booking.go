package booking

import (
	"context"

	"karoo/models"

	"go.uber.org/zap"
)

// SubmitBooking validates the raw submission, prices it, relays it to the
// form-collection service and returns the payment redirect URL.
//
// Ordering matters: the relay call precedes the redirect so a booking that
// was never recorded can never reach the payment gateway. If the relay
// fails the error is returned as-is and no redirect exists. There is no
// transaction spanning the three external systems; the only consistency
// guarantee is this ordering.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, raw map[string]any) (string, error) {
	request, err := ValidateBooking(raw)
	if err != nil {
		s.Logger.Warn("Booking rejected by validation", zap.Error(err))
		return "", err
	}

	// Pricing cannot fail on validated input.
	priced := models.PricedBooking{
		BookingRequest: *request,
		Total:          Quote(request.Adults, request.Children, request.TourPrice),
	}

	receipt, err := s.Relay.Submit(ctx, priced)
	if err != nil {
		return "", err
	}
	s.Logger.Info("Booking relayed",
		zap.String("tour", priced.TourName),
		zap.String("total", FormatAmount(priced.Total)),
		zap.ByteString("receipt", receipt))

	redirect := s.Gateway.BuildRedirectURL(priced)
	s.Logger.Info("Generated payment redirect", zap.String("tour", priced.TourName))
	return redirect, nil
}
