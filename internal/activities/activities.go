// Package activities keeps the back-office event feed: new form submissions,
// bookings, and subscriber changes show up here for the dashboard.
package activities

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

var ErrNotFound = errors.New("activity not found")

type ListFilter struct {
	Type       string
	UnreadOnly bool
}

type Repository interface {
	Insert(ctx context.Context, item models.Activity) error
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]models.Activity, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int64) ([]models.Activity, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, item models.Activity) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func listQuery(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.UnreadOnly {
		query["isRead"] = false
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Activity, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

func (r *MongoRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := r.col.UpdateMany(ctx, bson.M{"isRead": false}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoRepository) Recent(ctx context.Context, limit int64) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Activity, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type Service struct {
	repo     Repository
	location *time.Location
	log      *slog.Logger
}

func NewService(repo Repository, location *time.Location, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		log:      log,
	}
}

// RecordActivity appends an event to the feed. Best effort: a failed write is
// logged and swallowed so it never breaks the triggering request.
func (s *Service) RecordActivity(ctx context.Context, item models.Activity) {
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now().In(s.location)
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		s.log.Warn("activity record failed",
			slog.String("type", item.Type),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]models.Activity, int64, error) {
	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

func (s *Service) Recent(ctx context.Context, limit int64) ([]models.Activity, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, ListFilter{UnreadOnly: true})
}
