package consultations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, item models.Consultation) error
	UpdateStatus(ctx context.Context, id string, set bson.M) (models.Consultation, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Consultation, error)
	Count(ctx context.Context, filter AdminListFilter) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item models.Consultation) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, set bson.M) (models.Consultation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Consultation
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.Consultation{}, err
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
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"company": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Consultation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter AdminListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

func (r *MongoRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}
