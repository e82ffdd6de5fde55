package models

// BookingRequest is the validated, typed form of a raw booking submission.
// It is produced only by the booking validator; downstream stages never see
// untyped input. Nothing here is persisted by this service, the record of
// truth is the relayed form submission.
type BookingRequest struct {
	TourName  string  `json:"tourName"`
	TourID    string  `json:"tourId"`
	TourPrice float64 `json:"tourPrice"` // Per-adult unit price as submitted by the caller
	DateFrom  string  `json:"booking_date_from"`
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"contact"`
	Country   string  `json:"country"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
}

// PricedBooking is a BookingRequest plus its computed total. The total is
// derived once by the pricing calculator and never mutated afterwards.
type PricedBooking struct {
	BookingRequest
	Total float64 `json:"-"`
}
