// Package stats serves the landing-page counters. A single document backs
// the whole resource; the admin panel overwrites it in place.
package stats

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

// statsDocID pins the singleton so upserts always hit the same document.
const statsDocID = "site-stats"

var ErrNotFound = errors.New("stats not found")

type UpdateRequest struct {
	HappyClients       int     `json:"happyClients" validate:"min=0"`
	ProjectsDone       int     `json:"projectsDone" validate:"min=0"`
	ClientSatisfaction int     `json:"clientSatisfaction" validate:"min=0,max=100"`
	TotalRevenue       float64 `json:"totalRevenue" validate:"min=0"`
}

type Repository interface {
	Get(ctx context.Context) (models.StatsData, error)
	Upsert(ctx context.Context, set bson.M) (models.StatsData, error)
	Increment(ctx context.Context, inc, set bson.M) (models.StatsData, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context) (models.StatsData, error) {
	var item models.StatsData
	if err := r.col.FindOne(ctx, bson.M{"_id": statsDocID}).Decode(&item); err != nil {
		return models.StatsData{}, err
	}
	return item, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, set bson.M) (models.StatsData, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.StatsData
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statsDocID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return models.StatsData{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Increment(ctx context.Context, inc, set bson.M) (models.StatsData, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.StatsData
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statsDocID}, bson.M{"$inc": inc, "$set": set}, opts).Decode(&updated)
	if err != nil {
		return models.StatsData{}, err
	}
	return updated, nil
}

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Get(ctx context.Context) (models.StatsData, error) {
	item, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.StatsData{}, ErrNotFound
		}
		return models.StatsData{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (models.StatsData, error) {
	now := time.Now().In(s.location)
	set := bson.M{
		"happyClients":       req.HappyClients,
		"projectsDone":       req.ProjectsDone,
		"clientSatisfaction": req.ClientSatisfaction,
		"totalRevenue":       req.TotalRevenue,
		"lastUpdated":        now,
		"updatedAt":          now,
	}
	return s.repo.Upsert(ctx, set)
}

// SimulateOrder bumps the public counters the way a closed deal would, for
// demoing the live-updating landing page.
func (s *Service) SimulateOrder(ctx context.Context) (models.StatsData, error) {
	now := time.Now().In(s.location)
	inc := bson.M{
		"projectsDone": 1,
		"happyClients": 1,
		"totalRevenue": 2500,
	}
	set := bson.M{
		"lastUpdated": now,
		"updatedAt":   now,
	}
	return s.repo.Increment(ctx, inc, set)
}
