package booking

import (
	"math"
	"strconv"
)

// Quote computes the total price for a booking party. Children are charged
// half the per-adult rate. The result is rounded to currency precision and
// is the only total the rest of the pipeline ever sees.
func Quote(adults, children int, perAdult float64) float64 {
	total := float64(adults)*perAdult + float64(children)*(perAdult*0.5)
	return math.Round(total*100) / 100
}

// FormatAmount renders a price as the fixed-point two-decimal string the
// gateway expects, e.g. 250 -> "250.00".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
