// File: database/repository/tour/tourMongoQueries.go
package tourRepo

import (
	"fmt"
	"time"

	"karoo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a tour by its unique ID.
func (r *MongoTourRepo) GetByID(id string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tour with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

// GetAll retrieves all tours.
func (r *MongoTourRepo) GetAll() ([]models.Tour, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

// CountsByLocation groups tours by province. Provinces without tours are
// zero-filled so the full list always comes back.
func (r *MongoTourRepo) CountsByLocation() (map[string]int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$location", "count": bson.M{"$sum": 1}}}},
		{{Key: "$project", Value: bson.M{"location": "$_id", "count": 1, "_id": 0}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tour counts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Location string `bson:"location"`
		Count    int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode tour counts: %w", err)
	}

	counts := make(map[string]int, len(models.Provinces))
	for _, province := range models.Provinces {
		counts[province] = 0
	}
	for _, row := range rows {
		counts[row.Location] = row.Count
	}
	return counts, nil
}
