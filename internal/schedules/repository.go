package schedules

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, item models.Schedule) error
	Update(ctx context.Context, id string, set bson.M) (models.Schedule, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Schedule, error)
	Count(ctx context.Context, filter AdminListFilter) (int64, error)
	ReservedTimes(ctx context.Context, date string) (map[string]bool, error)
	CountUpcoming(ctx context.Context, fromDate string) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item models.Schedule) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (models.Schedule, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Schedule
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.Schedule{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func listQuery(filter AdminListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["preferredDate"] = filter.Date
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Schedule, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "preferredDate", Value: 1},
			{Key: "preferredTime", Value: 1},
		}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Schedule, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter AdminListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

// ReservedTimes returns the times already held on a date. Cancelled
// bookings release their slot.
func (r *MongoRepository) ReservedTimes(ctx context.Context, date string) (map[string]bool, error) {
	query := bson.M{
		"preferredDate": date,
		"status": bson.M{"$in": bson.A{
			models.ScheduleStatusPending,
			models.ScheduleStatusConfirmed,
		}},
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetProjection(bson.M{"preferredTime": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reserved := make(map[string]bool)
	for cursor.Next(ctx) {
		var doc struct {
			PreferredTime string `bson:"preferredTime"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reserved[doc.PreferredTime] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reserved, nil
}

func (r *MongoRepository) CountUpcoming(ctx context.Context, fromDate string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"preferredDate": bson.M{"$gte": fromDate},
		"status": bson.M{"$in": bson.A{
			models.ScheduleStatusPending,
			models.ScheduleStatusConfirmed,
		}},
	})
}
