package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"karoo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	cacheKeyAllTours = "tours:all"
	cacheKeyCounts   = "tours:counts"
	cacheTTL         = 10 * time.Minute
)

// CreateTour uploads the images, stores the tour and invalidates the caches.
func (s *DefaultTourService) CreateTour(ctx context.Context, input CreateTourInput) (*models.Tour, error) {
	if input.Name == "" || input.Location == "" || input.Price <= 0 {
		return nil, fmt.Errorf("name, location, and price are required")
	}
	if !models.ValidProvince(input.Location) {
		return nil, fmt.Errorf("unsupported location: %s", input.Location)
	}
	if input.CoverImagePath == "" {
		return nil, fmt.Errorf("cover image is required for new tours")
	}

	coverURL, err := s.Storage.UploadImage(ctx, input.CoverImagePath, "tours")
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}

	var additionalURLs []string
	for _, path := range input.AdditionalImagePaths {
		url, err := s.Storage.UploadImage(ctx, path, "tours")
		if err != nil {
			return nil, fmt.Errorf("failed to upload additional image: %w", err)
		}
		additionalURLs = append(additionalURLs, url)
	}

	tour := &models.Tour{
		ID:               uuid.New().String(),
		Name:             input.Name,
		CoverImage:       coverURL,
		AdditionalImages: additionalURLs,
		Location:         input.Location,
		Price:            input.Price,
		DurationHours:    input.DurationHours,
		DurationDays:     input.DurationDays,
		Description:      input.Description,
	}
	if err := s.Repo.Create(tour); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.Logger.Info("Tour created", zap.String("id", tour.ID), zap.String("name", tour.Name))
	return tour, nil
}

// GetTour fetches a single tour by ID.
func (s *DefaultTourService) GetTour(id string) (*models.Tour, error) {
	return s.Repo.GetByID(id)
}

// ListTours returns the full catalog, served from cache when fresh.
func (s *DefaultTourService) ListTours(ctx context.Context) ([]models.Tour, error) {
	if cached, err := s.Cache.Get(ctx, cacheKeyAllTours).Result(); err == nil {
		var tours []models.Tour
		if err := json.Unmarshal([]byte(cached), &tours); err == nil {
			return tours, nil
		}
	}

	tours, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tours); err == nil {
		if err := s.Cache.Set(ctx, cacheKeyAllTours, data, cacheTTL).Err(); err != nil {
			s.Logger.Warn("Failed to cache tour list", zap.Error(err))
		}
	}
	return tours, nil
}

// UpdateTour applies the provided fields, uploading replacement images when given.
func (s *DefaultTourService) UpdateTour(ctx context.Context, id string, input UpdateTourInput) (*models.Tour, error) {
	updateDoc := bson.M{}
	if input.Name != "" {
		updateDoc["name"] = input.Name
	}
	if input.Location != "" {
		if !models.ValidProvince(input.Location) {
			return nil, fmt.Errorf("unsupported location: %s", input.Location)
		}
		updateDoc["location"] = input.Location
	}
	if input.Price > 0 {
		updateDoc["price"] = input.Price
	}
	if input.DurationHours > 0 {
		updateDoc["duration_hours"] = input.DurationHours
	}
	if input.DurationDays > 0 {
		updateDoc["duration_days"] = input.DurationDays
	}
	if input.Description != "" {
		updateDoc["description"] = input.Description
	}

	if input.CoverImagePath != "" {
		coverURL, err := s.Storage.UploadImage(ctx, input.CoverImagePath, "tours")
		if err != nil {
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
		updateDoc["cover_image"] = coverURL
	}
	if len(input.AdditionalImagePaths) > 0 {
		var urls []string
		for _, path := range input.AdditionalImagePaths {
			url, err := s.Storage.UploadImage(ctx, path, "tours")
			if err != nil {
				return nil, fmt.Errorf("failed to upload additional image: %w", err)
			}
			urls = append(urls, url)
		}
		updateDoc["additional_images"] = urls
	}

	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields provided to update")
	}

	updated, err := s.Repo.UpdateSetDocument(id, updateDoc)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.Logger.Info("Tour updated", zap.String("id", id))
	return updated, nil
}

// DeleteTour removes a tour from the catalog.
func (s *DefaultTourService) DeleteTour(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.Logger.Info("Tour deleted", zap.String("id", id))
	return nil
}

// CountsByLocation returns tours-per-province, served from cache when fresh.
func (s *DefaultTourService) CountsByLocation(ctx context.Context) (map[string]int, error) {
	if cached, err := s.Cache.Get(ctx, cacheKeyCounts).Result(); err == nil {
		var counts map[string]int
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return counts, nil
		}
	}

	counts, err := s.Repo.CountsByLocation()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(counts); err == nil {
		if err := s.Cache.Set(ctx, cacheKeyCounts, data, cacheTTL).Err(); err != nil {
			s.Logger.Warn("Failed to cache tour counts", zap.Error(err))
		}
	}
	return counts, nil
}

// invalidateCache drops the catalog read caches after a write.
func (s *DefaultTourService) invalidateCache(ctx context.Context) {
	if err := s.Cache.Del(ctx, cacheKeyAllTours, cacheKeyCounts).Err(); err != nil {
		s.Logger.Warn("Failed to invalidate tour caches", zap.Error(err))
	}
}
