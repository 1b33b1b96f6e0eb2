// File: database/repository/group/interface.go
package groupRepo

import (
	"context"
	"log"

	"carpool/database"
	"carpool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GroupRepository is the contract for carpool groups and their schedule
// configuration. Get methods return (nil, nil) when the document is absent.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) (string, error)
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetScheduleConfig(ctx context.Context, groupID string) (*models.GroupScheduleConfig, error)
	SetScheduleConfig(ctx context.Context, groupID string, cfg *models.GroupScheduleConfig) error
	AddMember(ctx context.Context, groupID, userID string) error
}

type mongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo constructs a new MongoDB GroupRepository.
func NewMongoGroupRepo() GroupRepository {
	repo := &mongoGroupRepo{
		coll: database.DB().Collection("groups"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("group indexes: %v", err)
	}
	return repo
}
