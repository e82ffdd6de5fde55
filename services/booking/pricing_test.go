package booking_test

import (
	"testing"

	"karoo/services/booking"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		perAdult float64
		total    float64
		amount   string
	}{
		{"adults only", 2, 0, 100.00, 200.00, "200.00"},
		{"children at half rate", 2, 1, 100.00, 250.00, "250.00"},
		{"single adult", 1, 0, 99.99, 99.99, "99.99"},
		{"rounding to currency precision", 3, 2, 33.33, 133.32, "133.32"},
		{"odd half-rate cents", 1, 1, 0.01, 0.02, "0.02"},
		{"large party", 10, 10, 1234.56, 18518.40, "18518.40"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total := booking.Quote(test.adults, test.children, test.perAdult)
			assert.Equal(t, test.total, total)
			assert.Equal(t, test.amount, booking.FormatAmount(total))
		})
	}
}

func TestQuoteIsReproducible(t *testing.T) {
	first := booking.Quote(7, 3, 123.45)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, booking.Quote(7, 3, 123.45))
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "250.00", booking.FormatAmount(250))
	assert.Equal(t, "0.50", booking.FormatAmount(0.5))
	assert.Equal(t, "1000.10", booking.FormatAmount(1000.1))
}
