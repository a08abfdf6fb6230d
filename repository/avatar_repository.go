package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/models"
)

type AvatarRepository interface {
	Create(ctx context.Context, avatar *models.Avatar) (*mongo.InsertOneResult, error)
}

type avatarRepository struct {
	collection *mongo.Collection
}

func NewAvatarRepository() AvatarRepository {
	return &avatarRepository{
		collection: config.GetCollection(config.AvatarCollection),
	}
}

func (r *avatarRepository) Create(ctx context.Context, avatar *models.Avatar) (*mongo.InsertOneResult, error) {
	avatar.ID = primitive.NewObjectID()
	avatar.CreatedAt = time.Now()
	avatar.UpdatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar metadata: %w", err)
	}
	return res, nil
}
