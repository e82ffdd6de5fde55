package booking

import (
	"net/url"

	"karoo/models"
)

// Gateway holds the PayFast merchant identity and the callback URLs for one
// deployment. Nothing in it derives from a booking; it is injected at
// construction and shared by every redirect built.
type Gateway struct {
	MerchantID  string
	MerchantKey string
	ProcessURL  string
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
}

// BuildRedirectURL constructs the gateway process URL the customer's browser
// navigates to. The server never calls the gateway itself at booking time.
//
// The query parameters carry no signature, so the amount is not
// cryptographically bound to the booking; integrity rests on the gateway
// verifying the merchant account configuration on its side.
func (g Gateway) BuildRedirectURL(b models.PricedBooking) string {
	params := url.Values{}
	params.Set("merchant_id", g.MerchantID)
	params.Set("merchant_key", g.MerchantKey)
	params.Set("return_url", g.ReturnURL)
	params.Set("cancel_url", g.CancelURL)
	params.Set("notify_url", g.NotifyURL)
	params.Set("amount", FormatAmount(b.Total))
	params.Set("item_name", "Booking for "+b.TourName)
	return g.ProcessURL + "?" + params.Encode()
}
