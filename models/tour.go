package models

import "time"

// Provinces lists the locations a tour can be hosted in. Catalog
// aggregations zero-fill this list so every province appears in counts.
var Provinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"Northern Cape",
	"North West",
	"Western Cape",
}

// Tour represents a bookable tour in the catalog.
type Tour struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	CoverImage       string    `bson:"cover_image" json:"coverImage"`                       // Hosted image URL, required on creation
	AdditionalImages []string  `bson:"additional_images,omitempty" json:"additionalImages"` // Optional gallery URLs
	Location         string    `bson:"location" json:"location"`                            // One of Provinces
	Price            float64   `bson:"price" json:"price"`                                  // Per-adult price
	DurationHours    int       `bson:"duration_hours" json:"durationHours"`
	DurationDays     int       `bson:"duration_days" json:"durationDays"`
	Description      string    `bson:"description" json:"description"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// ValidProvince reports whether loc is one of the supported provinces.
func ValidProvince(loc string) bool {
	for _, p := range Provinces {
		if p == loc {
			return true
		}
	}
	return false
}
