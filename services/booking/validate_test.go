package booking_test

import (
	"errors"
	"testing"

	"karoo/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() map[string]any {
	return map[string]any{
		"tourName":          "Kruger Safari",
		"tourPrice":         "100.00",
		"booking_obj_id":    "6543f0c2a1b2c3d4e5f60718",
		"booking_date_from": "2026-10-01",
		"adults":            "2",
		"children":          "1",
		"name":              "Thandi Nkosi",
		"email":             "thandi@example.com",
		"contact":           "+27115551234",
		"country":           "South Africa",
	}
}

func TestValidateBooking(t *testing.T) {
	t.Run("accepts a complete submission", func(t *testing.T) {
		request, err := booking.ValidateBooking(validSubmission())
		require.NoError(t, err)

		assert.Equal(t, "Kruger Safari", request.TourName)
		assert.Equal(t, "6543f0c2a1b2c3d4e5f60718", request.TourID)
		assert.Equal(t, 100.00, request.TourPrice)
		assert.Equal(t, 2, request.Adults)
		assert.Equal(t, 1, request.Children)
		assert.Equal(t, "+27115551234", request.Phone)
	})

	t.Run("defaults children, subject and message", func(t *testing.T) {
		raw := validSubmission()
		delete(raw, "children")

		request, err := booking.ValidateBooking(raw)
		require.NoError(t, err)

		assert.Equal(t, 0, request.Children)
		assert.Equal(t, "Booking for Kruger Safari", request.Subject)
		assert.Equal(t, "No additional message provided", request.Message)
	})

	t.Run("accepts JSON numeric values", func(t *testing.T) {
		raw := validSubmission()
		raw["tourPrice"] = 100.0
		raw["adults"] = 2.0
		raw["children"] = 0.0

		request, err := booking.ValidateBooking(raw)
		require.NoError(t, err)
		assert.Equal(t, 100.00, request.TourPrice)
		assert.Equal(t, 2, request.Adults)
	})

	t.Run("enumerates every missing field", func(t *testing.T) {
		raw := validSubmission()
		delete(raw, "email")
		delete(raw, "contact")

		_, err := booking.ValidateBooking(raw)
		require.Error(t, err)

		var validationErr *booking.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.ElementsMatch(t, []string{"email", "contact"}, validationErr.MissingFields)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "contact")
	})

	t.Run("treats blank strings as missing", func(t *testing.T) {
		raw := validSubmission()
		raw["name"] = "   "

		_, err := booking.ValidateBooking(raw)
		require.Error(t, err)

		var validationErr *booking.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.ElementsMatch(t, []string{"name"}, validationErr.MissingFields)
	})

	t.Run("requires country", func(t *testing.T) {
		raw := validSubmission()
		delete(raw, "country")

		_, err := booking.ValidateBooking(raw)
		require.Error(t, err)

		var validationErr *booking.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.ElementsMatch(t, []string{"country"}, validationErr.MissingFields)
	})

	t.Run("rejects zero adults", func(t *testing.T) {
		raw := validSubmission()
		raw["adults"] = "0"

		_, err := booking.ValidateBooking(raw)
		require.EqualError(t, err, "number of adults must be greater than 0")
	})

	t.Run("rejects negative children", func(t *testing.T) {
		raw := validSubmission()
		raw["children"] = "-1"

		_, err := booking.ValidateBooking(raw)
		require.EqualError(t, err, "number of children cannot be negative")
	})

	t.Run("rejects unparseable price", func(t *testing.T) {
		raw := validSubmission()
		raw["tourPrice"] = "free"

		_, err := booking.ValidateBooking(raw)
		require.EqualError(t, err, "invalid tour price")

		var validationErr *booking.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Empty(t, validationErr.MissingFields)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		raw := validSubmission()
		raw["tourPrice"] = "0"

		_, err := booking.ValidateBooking(raw)
		require.EqualError(t, err, "invalid tour price")
	})
}
