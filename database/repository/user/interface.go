// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"log"

	"carpool/database"
	"carpool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the contract for parent accounts. Get methods return
// (nil, nil) when the document is absent.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, userID, tokenHash string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("user indexes: %v", err)
	}
	return repo
}
