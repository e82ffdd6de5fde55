// File: database/repository/tour/tourMongoCrud.go
package tourRepo

import (
	"fmt"
	"time"

	"karoo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tour.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, tour)
	if err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update and returns the updated tour.
func (r *MongoTourRepo) UpdateSetDocument(id string, updateDoc bson.M) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": updateDoc}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Tour
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update tour with id %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a tour document by its ID.
func (r *MongoTourRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete tour with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tour with id %s not found", id)
	}
	return nil
}
