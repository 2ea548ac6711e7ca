package casestudies

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, item models.CaseStudy) error
	Update(ctx context.Context, id string, set bson.M) (models.CaseStudy, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context, filter PublicListFilter) ([]models.CaseStudy, error)
	GetPublishedBySlug(ctx context.Context, slug string) (models.CaseStudy, error)
	ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.CaseStudy, error)
	CountAdmin(ctx context.Context, filter AdminListFilter) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item models.CaseStudy) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (models.CaseStudy, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CaseStudy
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.CaseStudy{}, err
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

func (r *MongoRepository) ListPublished(ctx context.Context, filter PublicListFilter) ([]models.CaseStudy, error) {
	query := bson.M{"status": models.BlogStatusPublished}
	if filter.Industry != "" {
		query["industry"] = filter.Industry
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.CaseStudy, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetPublishedBySlug(ctx context.Context, slug string) (models.CaseStudy, error) {
	var item models.CaseStudy
	query := bson.M{"slug": slug, "status": models.BlogStatusPublished}
	if err := r.col.FindOne(ctx, query).Decode(&item); err != nil {
		return models.CaseStudy{}, err
	}
	return item, nil
}

func adminQuery(filter AdminListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Industry != "" {
		query["industry"] = filter.Industry
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"client": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	return query
}

func (r *MongoRepository) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.CaseStudy, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, adminQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.CaseStudy, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) CountAdmin(ctx context.Context, filter AdminListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, adminQuery(filter))
}
