// Package consent keeps the append-only cookie-consent log required for
// compliance. Records are written from the public banner and only read back
// in the back office.
package consent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"corus-backend/internal/models"
)

type RecordRequest struct {
	Consent   bool   `json:"consent"`
	Timestamp string `json:"timestamp" validate:"required"`
	UserAgent string `json:"userAgent"`
}

type Repository interface {
	Create(ctx context.Context, item models.ConsentRecord) error
	List(ctx context.Context, limit, offset int64) ([]models.ConsentRecord, error)
	Count(ctx context.Context) (int64, error)
	CountConsent(ctx context.Context, from time.Time, given bool) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	DailyBreakdown(ctx context.Context, from time.Time) ([]models.ConsentDailyBucket, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item models.ConsentRecord) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int64) ([]models.ConsentRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ConsentRecord, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) CountConsent(ctx context.Context, from time.Time, given bool) (int64, error) {
	query := bson.M{"consent": given}
	if !from.IsZero() {
		query["createdAt"] = bson.M{"$gte": from}
	}
	return r.col.CountDocuments(ctx, query)
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) DailyBreakdown(ctx context.Context, from time.Time) ([]models.ConsentDailyBucket, error) {
	match := bson.M{}
	if !from.IsZero() {
		match["createdAt"] = bson.M{"$gte": from}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"accepted": bson.M{"$sum": bson.M{"$cond": bson.A{"$consent", 1, 0}}},
			"declined": bson.M{"$sum": bson.M{"$cond": bson.A{"$consent", 0, 1}}},
			"total":    bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	buckets := make([]models.ConsentDailyBucket, 0)
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
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

func (s *Service) Record(ctx context.Context, req RecordRequest, ip string) (models.ConsentRecord, error) {
	now := time.Now().In(s.location)
	item := models.ConsentRecord{
		ID:        primitive.NewObjectID().Hex(),
		Consent:   req.Consent,
		Timestamp: strings.TrimSpace(req.Timestamp),
		UserAgent: strings.TrimSpace(req.UserAgent),
		IPAddress: ip,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return models.ConsentRecord{}, err
	}
	return item, nil
}

var ErrNotFound = errors.New("consent record not found")

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// rangeStart maps the stats range parameter to a window start; "all" (or
// anything unrecognized) means no lower bound.
func (s *Service) rangeStart(rangeName string) time.Time {
	now := time.Now().In(s.location)
	switch rangeName {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	default:
		return time.Time{}
	}
}

func (s *Service) Stats(ctx context.Context, rangeName string) (models.ConsentStats, error) {
	from := s.rangeStart(rangeName)

	accepted, err := s.repo.CountConsent(ctx, from, true)
	if err != nil {
		return models.ConsentStats{}, err
	}
	declined, err := s.repo.CountConsent(ctx, from, false)
	if err != nil {
		return models.ConsentStats{}, err
	}
	daily, err := s.repo.DailyBreakdown(ctx, from)
	if err != nil {
		return models.ConsentStats{}, err
	}

	out := models.ConsentStats{
		Total:          accepted + declined,
		Accepted:       accepted,
		Declined:       declined,
		AcceptanceRate: "0%",
		DailyBreakdown: daily,
	}
	if out.Total > 0 {
		out.AcceptanceRate = fmt.Sprintf("%.1f%%", float64(accepted)/float64(out.Total)*100)
	}
	return out, nil
}

func (s *Service) ListAdmin(ctx context.Context, limit, offset int64) ([]models.ConsentRecord, int64, error) {
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
