package team

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

var ErrNotFound = errors.New("team member not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (models.TeamMember, error) {
	now := time.Now().In(s.location)
	item := models.TeamMember{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Role:        strings.TrimSpace(req.Role),
		Department:  strings.TrimSpace(req.Department),
		Position:    strings.TrimSpace(req.Position),
		Phone:       strings.TrimSpace(req.Phone),
		Avatar:      strings.TrimSpace(req.Avatar),
		Status:      req.Status,
		JoinDate:    req.JoinDate,
		Skills:      req.Skills,
		Projects:    req.Projects,
		Performance: req.Performance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return models.TeamMember{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (models.TeamMember, error) {
	set := bson.M{
		"name":        strings.TrimSpace(req.Name),
		"email":       strings.ToLower(strings.TrimSpace(req.Email)),
		"role":        strings.TrimSpace(req.Role),
		"department":  strings.TrimSpace(req.Department),
		"position":    strings.TrimSpace(req.Position),
		"phone":       strings.TrimSpace(req.Phone),
		"avatar":      strings.TrimSpace(req.Avatar),
		"status":      req.Status,
		"joinDate":    req.JoinDate,
		"skills":      req.Skills,
		"projects":    req.Projects,
		"performance": req.Performance,
		"updatedAt":   time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.TeamMember{}, ErrNotFound
		}
		return models.TeamMember{}, err
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

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.TeamMember, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Department = strings.TrimSpace(filter.Department)
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
