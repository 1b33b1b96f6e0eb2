// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedule_slots collection.
func (r *mongoScheduleSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for groupId and datetime (conflict-check query pattern)
		{
			Keys:    bson.D{{Key: "groupId", Value: 1}, {Key: "datetime", Value: 1}},
			Options: options.Index().SetName("group_datetime_idx"),
		},
		{
			Keys:    bson.D{{Key: "datetime", Value: 1}},
			Options: options.Index().SetName("datetime_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create schedule slot indexes: %w", err)
	}
	return nil
}
