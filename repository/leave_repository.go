package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/models"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	FindByIDWithUser(ctx context.Context, id primitive.ObjectID) (*models.LeaveWithUser, error)
	FindOverlapping(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.Leave, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, approvedBy *primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindPage(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveWithUser, int64, error)
}

type leaveRepository struct {
	collection *mongo.Collection
}

func NewLeaveRepository() LeaveRepository {
	return &leaveRepository{
		collection: config.GetCollection(config.LeaveCollection),
	}
}

func (r *leaveRepository) Create(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	var leave models.Leave
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by ID: %w", err)
	}
	return &leave, nil
}

func (r *leaveRepository) FindByIDWithUser(ctx context.Context, id primitive.ObjectID) (*models.LeaveWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$userDetails.name"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave request with user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.LeaveWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode leave request with user: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// FindOverlapping returns the user's leave requests whose inclusive [start,end]
// intervals intersect the given one. ISO date strings compare correctly, so
// the interval test runs inside the store.
func (r *leaveRepository) FindOverlapping(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.Leave, error) {
	filter := bson.M{
		"user_id":    userID,
		"start_date": bson.M{"$lte": endDate},
		"end_date":   bson.M{"$gte": startDate},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Leave
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping leave requests: %w", err)
	}
	return results, nil
}

func (r *leaveRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error) {
	update["updated_at"] = time.Now()
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	return res, nil
}

// UpdateStatus sets the status and the approver attribution in one write.
// approvedBy must be nil when the status returns to Pending; the field is
// unset rather than written as null.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, approvedBy *primitive.ObjectID) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	if approvedBy != nil {
		update["$set"].(bson.M)["approved_by"] = *approvedBy
	} else {
		update["$unset"] = bson.M{"approved_by": ""}
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave status: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) FindPage(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveWithUser, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$userDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$userDetails.name"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.LeaveWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	if len(results) == 0 {
		return []models.LeaveWithUser{}, total, nil
	}
	return results, total, nil
}
