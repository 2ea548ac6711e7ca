// Package admin implements back-office authentication: credential login
// against the users collection, short-lived access tokens with cookie and
// bearer support, and refresh-token rotation.
package admin

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/models"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.User) error
}

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user models.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}
