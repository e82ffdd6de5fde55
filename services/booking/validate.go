package booking

import (
	"strconv"
	"strings"

	"karoo/models"
)

// requiredFields are the submission keys that must be present and non-blank.
// Contact information is validated strictly: country is required rather than
// defaulted, while subject and message fall back to generated values.
var requiredFields = []string{
	"tourName",
	"tourPrice",
	"booking_obj_id",
	"booking_date_from",
	"adults",
	"name",
	"email",
	"contact",
	"country",
}

// ValidateBooking turns a raw key/value submission into a typed
// BookingRequest. It returns a ValidationError listing every missing field,
// or one describing the first numeric field that failed to parse or violated
// its bound.
func ValidateBooking(raw map[string]any) (*models.BookingRequest, error) {
	var missing []string
	for _, field := range requiredFields {
		if fieldString(raw, field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, NewMissingFieldsError(missing)
	}

	price, err := strconv.ParseFloat(fieldString(raw, "tourPrice"), 64)
	if err != nil || price <= 0 {
		return nil, NewInvalidFieldError("invalid tour price")
	}

	adults, err := strconv.Atoi(fieldString(raw, "adults"))
	if err != nil || adults <= 0 {
		return nil, NewInvalidFieldError("number of adults must be greater than 0")
	}

	childrenStr := fieldString(raw, "children")
	if childrenStr == "" {
		childrenStr = "0"
	}
	children, err := strconv.Atoi(childrenStr)
	if err != nil || children < 0 {
		return nil, NewInvalidFieldError("number of children cannot be negative")
	}

	tourName := fieldString(raw, "tourName")

	subject := fieldString(raw, "subject")
	if subject == "" {
		subject = "Booking for " + tourName
	}
	message := fieldString(raw, "message")
	if message == "" {
		message = "No additional message provided"
	}

	return &models.BookingRequest{
		TourName:  tourName,
		TourID:    fieldString(raw, "booking_obj_id"),
		TourPrice: price,
		DateFrom:  fieldString(raw, "booking_date_from"),
		Adults:    adults,
		Children:  children,
		Name:      fieldString(raw, "name"),
		Email:     fieldString(raw, "email"),
		Phone:     fieldString(raw, "contact"),
		Country:   fieldString(raw, "country"),
		Subject:   subject,
		Message:   message,
	}, nil
}

// fieldString extracts a trimmed string from a loosely typed submission
// value. JSON bodies deliver numbers as float64 and forms deliver strings;
// both are normalized here so the rest of the validator sees one shape.
func fieldString(raw map[string]any, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
