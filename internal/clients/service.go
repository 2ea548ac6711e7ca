package clients

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

var ErrNotFound = errors.New("client not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (models.Client, error) {
	now := time.Now().In(s.location)
	item := models.Client{
		ID:            primitive.NewObjectID().Hex(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		Company:       strings.TrimSpace(req.Company),
		Industry:      strings.TrimSpace(req.Industry),
		Status:        req.Status,
		TotalProjects: req.TotalProjects,
		TotalRevenue:  req.TotalRevenue,
		LastContact:   req.LastContact,
		JoinDate:      req.JoinDate,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return models.Client{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (models.Client, error) {
	set := bson.M{
		"name":          strings.TrimSpace(req.Name),
		"email":         strings.ToLower(strings.TrimSpace(req.Email)),
		"phone":         strings.TrimSpace(req.Phone),
		"company":       strings.TrimSpace(req.Company),
		"industry":      strings.TrimSpace(req.Industry),
		"status":        req.Status,
		"totalProjects": req.TotalProjects,
		"totalRevenue":  req.TotalRevenue,
		"lastContact":   req.LastContact,
		"joinDate":      req.JoinDate,
		"notes":         strings.TrimSpace(req.Notes),
		"updatedAt":     time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Client{}, ErrNotFound
		}
		return models.Client{}, err
	}
	return updated, nil
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

func (s *Service) GetByID(ctx context.Context, id string) (models.Client, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Client{}, ErrNotFound
		}
		return models.Client{}, err
	}
	return item, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Client, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Industry = strings.TrimSpace(filter.Industry)
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
