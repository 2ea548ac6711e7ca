package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type MenuRepository interface {
	List(ctx context.Context) ([]models.MenuGroup, error)
	GetBySlug(ctx context.Context, slug string) (models.MenuGroup, error)
	Create(ctx context.Context, item models.MenuGroup) error
	Update(ctx context.Context, id string, set bson.M) (models.MenuGroup, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SolutionRepository interface {
	List(ctx context.Context) ([]models.Solution, error)
	GetBySlug(ctx context.Context, slug string) (models.Solution, error)
	Create(ctx context.Context, item models.Solution) error
	Update(ctx context.Context, id string, set bson.M) (models.Solution, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type IndustryRepository interface {
	List(ctx context.Context) ([]models.Industry, error)
	GetBySlug(ctx context.Context, slug string) (models.Industry, error)
	Create(ctx context.Context, item models.Industry) error
	Update(ctx context.Context, id string, set bson.M) (models.Industry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var bySlugSort = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

type MongoMenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MongoMenuRepository {
	return &MongoMenuRepository{col: col}
}

func (r *MongoMenuRepository) List(ctx context.Context) ([]models.MenuGroup, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, bySlugSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.MenuGroup, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoMenuRepository) GetBySlug(ctx context.Context, slug string) (models.MenuGroup, error) {
	var item models.MenuGroup
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&item); err != nil {
		return models.MenuGroup{}, err
	}
	return item, nil
}

func (r *MongoMenuRepository) Create(ctx context.Context, item models.MenuGroup) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoMenuRepository) Update(ctx context.Context, id string, set bson.M) (models.MenuGroup, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.MenuGroup
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.MenuGroup{}, err
	}
	return updated, nil
}

func (r *MongoMenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type MongoSolutionRepository struct {
	col *mongo.Collection
}

func NewSolutionRepository(col *mongo.Collection) *MongoSolutionRepository {
	return &MongoSolutionRepository{col: col}
}

func (r *MongoSolutionRepository) List(ctx context.Context) ([]models.Solution, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, bySlugSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Solution, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoSolutionRepository) GetBySlug(ctx context.Context, slug string) (models.Solution, error) {
	var item models.Solution
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&item); err != nil {
		return models.Solution{}, err
	}
	return item, nil
}

func (r *MongoSolutionRepository) Create(ctx context.Context, item models.Solution) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoSolutionRepository) Update(ctx context.Context, id string, set bson.M) (models.Solution, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Solution
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.Solution{}, err
	}
	return updated, nil
}

func (r *MongoSolutionRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type MongoIndustryRepository struct {
	col *mongo.Collection
}

func NewIndustryRepository(col *mongo.Collection) *MongoIndustryRepository {
	return &MongoIndustryRepository{col: col}
}

func (r *MongoIndustryRepository) List(ctx context.Context) ([]models.Industry, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, bySlugSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Industry, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoIndustryRepository) GetBySlug(ctx context.Context, slug string) (models.Industry, error) {
	var item models.Industry
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&item); err != nil {
		return models.Industry{}, err
	}
	return item, nil
}

func (r *MongoIndustryRepository) Create(ctx context.Context, item models.Industry) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoIndustryRepository) Update(ctx context.Context, id string, set bson.M) (models.Industry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Industry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return models.Industry{}, err
	}
	return updated, nil
}

func (r *MongoIndustryRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
