package newsletter

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, item models.NewsletterSubscriber) error
	SetActive(ctx context.Context, email string, active bool, set bson.M) (models.NewsletterSubscriber, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.NewsletterSubscriber, error)
	Count(ctx context.Context, filter AdminListFilter) (int64, error)
	Stats(ctx context.Context, todayStart time.Time) (models.SubscriberStats, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item models.NewsletterSubscriber) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) SetActive(ctx context.Context, email string, active bool, set bson.M) (models.NewsletterSubscriber, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	set["isActive"] = active

	var updated models.NewsletterSubscriber
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.NewsletterSubscriber{}, err
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
	if filter.Active != nil {
		query["isActive"] = *filter.Active
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.NewsletterSubscriber, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "subscribedAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.NewsletterSubscriber, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter AdminListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

func (r *MongoRepository) Stats(ctx context.Context, todayStart time.Time) (models.SubscriberStats, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.SubscriberStats{}, err
	}
	active, err := r.col.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return models.SubscriberStats{}, err
	}
	today, err := r.col.CountDocuments(ctx, bson.M{"subscribedAt": bson.M{"$gte": todayStart}})
	if err != nil {
		return models.SubscriberStats{}, err
	}
	return models.SubscriberStats{
		TotalSubscribers:  total,
		ActiveSubscribers: active,
		TodaySubscribers:  today,
	}, nil
}
