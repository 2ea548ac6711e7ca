package newsletter

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/models"
)

var ErrNotFound = errors.New("subscriber not found")

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

func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (models.NewsletterSubscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	now := time.Now().In(s.location)

	item := models.NewsletterSubscriber{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		Name:         name,
		IsActive:     true,
		SubscribedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.repo.Create(ctx, item)
	if err == nil {
		return item, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return models.NewsletterSubscriber{}, err
	}

	// Known address: reactivate rather than reject.
	set := bson.M{"subscribedAt": now, "updatedAt": now}
	if name != "" {
		set["name"] = name
	}
	return s.repo.SetActive(ctx, email, true, set)
}

func (s *Service) Unsubscribe(ctx context.Context, req UnsubscribeRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	set := bson.M{"updatedAt": time.Now().In(s.location)}

	if _, err := s.repo.SetActive(ctx, email, false, set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

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

func (s *Service) Stats(ctx context.Context) (models.SubscriberStats, error) {
	now := time.Now().In(s.location)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	return s.repo.Stats(ctx, todayStart)
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.NewsletterSubscriber, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)

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
