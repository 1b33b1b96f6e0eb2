// File: database/repository/vehicle/interface.go
package vehicleRepo

import (
	"context"

	"carpool/database"
	"carpool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// VehicleRepository is the contract for family vehicles. GetByID returns
// (nil, nil) when the vehicle does not exist.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (string, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error)
}

type mongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo constructs a new MongoDB VehicleRepository.
func NewMongoVehicleRepo() VehicleRepository {
	return &mongoVehicleRepo{
		coll: database.DB().Collection("vehicles"),
	}
}
