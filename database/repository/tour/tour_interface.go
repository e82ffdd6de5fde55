package tourRepo

import (
	"karoo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TourRepository defines methods for tour catalog data access.
type TourRepository interface {
	// GetByID retrieves a tour by its unique ID.
	GetByID(id string) (*models.Tour, error)
	// GetAll retrieves all tours.
	GetAll() ([]models.Tour, error)
	// Create inserts a new tour record.
	Create(tour *models.Tour) error
	// UpdateSetDocument applies a partial update to a tour record.
	UpdateSetDocument(id string, updateDoc bson.M) (*models.Tour, error)
	// Delete removes a tour record by its ID.
	Delete(id string) error
	// CountsByLocation returns the number of tours per province.
	CountsByLocation() (map[string]int, error)
}
