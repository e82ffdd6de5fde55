package booking_test

import (
	"net/url"
	"strings"
	"testing"

	"karoo/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayFixture() booking.Gateway {
	return booking.Gateway{
		MerchantID:  "24154510",
		MerchantKey: "test-merchant-key",
		ProcessURL:  "https://sandbox.payfast.co.za/eng/process",
		ReturnURL:   "https://tours.example.com/api/bookings/success",
		CancelURL:   "https://tours.example.com/api/bookings/cancel",
		NotifyURL:   "https://tours.example.com/api/bookings/notify",
	}
}

func TestBuildRedirectURL(t *testing.T) {
	gateway := gatewayFixture()
	redirect := gateway.BuildRedirectURL(pricedBookingFixture())

	assert.True(t, strings.HasPrefix(redirect, gateway.ProcessURL+"?"))

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "24154510", query.Get("merchant_id"))
	assert.Equal(t, "test-merchant-key", query.Get("merchant_key"))
	assert.Equal(t, gateway.ReturnURL, query.Get("return_url"))
	assert.Equal(t, gateway.CancelURL, query.Get("cancel_url"))
	assert.Equal(t, gateway.NotifyURL, query.Get("notify_url"))
	assert.Equal(t, "250.00", query.Get("amount"))
	assert.Equal(t, "Booking for Kruger Safari", query.Get("item_name"))
}

func TestBuildRedirectURLIsDeterministic(t *testing.T) {
	gateway := gatewayFixture()
	priced := pricedBookingFixture()

	first := gateway.BuildRedirectURL(priced)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, gateway.BuildRedirectURL(priced))
	}
}
