// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"log"
	"time"

	"carpool/database"
	"carpool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleSlotRepository is the read/write contract for schedule slots.
// The validation engine consumes only the read half; all Get methods return
// (nil, nil) when the document is absent so callers own the not-found
// semantics.
type ScheduleSlotRepository interface {
	Create(ctx context.Context, slot *models.ScheduleSlot) (string, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error)
	GetByGroupAndDatetime(ctx context.Context, groupID string, at time.Time, excludeID string) ([]models.ScheduleSlot, error)
	ListByGroup(ctx context.Context, groupID string, from time.Time) ([]models.ScheduleSlot, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]models.ScheduleSlot, error)
	Update(ctx context.Context, slot *models.ScheduleSlot) error
	Delete(ctx context.Context, id string) error
}

type mongoScheduleSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleSlotRepo constructs a new MongoDB ScheduleSlotRepository.
func NewMongoScheduleSlotRepo() ScheduleSlotRepository {
	repo := &mongoScheduleSlotRepo{
		coll: database.DB().Collection("schedule_slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("schedule slot indexes: %v", err)
	}
	return repo
}
