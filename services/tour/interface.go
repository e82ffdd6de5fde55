package tour

import (
	"context"

	tourRepo "karoo/database/repository/tour"
	"karoo/models"
	"karoo/services/storage"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CreateTourInput carries the fields for a new catalog entry. Image paths
// point at temp files already saved by the handler; the service uploads them
// and stores the hosted URLs.
type CreateTourInput struct {
	Name                 string
	Location             string
	Price                float64
	DurationHours        int
	DurationDays         int
	Description          string
	CoverImagePath       string
	AdditionalImagePaths []string
}

// UpdateTourInput carries a partial update. Zero values mean "leave as is",
// matching the form-driven update flow where absent fields are not sent.
type UpdateTourInput struct {
	Name                 string
	Location             string
	Price                float64
	DurationHours        int
	DurationDays         int
	Description          string
	CoverImagePath       string
	AdditionalImagePaths []string
}

// TourService defines catalog operations.
type TourService interface {
	CreateTour(ctx context.Context, input CreateTourInput) (*models.Tour, error)
	GetTour(id string) (*models.Tour, error)
	ListTours(ctx context.Context) ([]models.Tour, error)
	UpdateTour(ctx context.Context, id string, input UpdateTourInput) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	CountsByLocation(ctx context.Context) (map[string]int, error)
}

// DefaultTourService implements TourService over the Mongo repository, with
// Cloudinary image hosting and a Redis read cache for the list endpoints.
type DefaultTourService struct {
	Repo    tourRepo.TourRepository
	Storage storage.StorageService
	Cache   *redis.Client
	Logger  *zap.Logger
}
