package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/cache"
	"corus-backend/internal/models"
	"corus-backend/internal/utils"
)

var (
	ErrNotFound    = errors.New("content not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

const (
	cacheKeyMenus      = "content:menus"
	cacheKeySolutions  = "content:solutions"
	cacheKeyIndustries = "content:industries"
)

type Service struct {
	menus      MenuRepository
	solutions  SolutionRepository
	industries IndustryRepository
	cache      cache.Cache
	cacheTTL   time.Duration
	location   *time.Location
}

func NewService(menus MenuRepository, solutions SolutionRepository, industries IndustryRepository, c cache.Cache, cacheTTL time.Duration, location *time.Location) *Service {
	return &Service{
		menus:      menus,
		solutions:  solutions,
		industries: industries,
		cache:      c,
		cacheTTL:   cacheTTL,
		location:   location,
	}
}

func (s *Service) ListMenus(ctx context.Context) ([]models.MenuGroup, error) {
	var cached []models.MenuGroup
	if hit := s.cacheGet(ctx, cacheKeyMenus, &cached); hit {
		return cached, nil
	}
	items, err := s.menus.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyMenus, items)
	return items, nil
}

func (s *Service) GetMenuBySlug(ctx context.Context, slug string) (models.MenuGroup, error) {
	item, err := s.menus.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MenuGroup{}, ErrNotFound
		}
		return models.MenuGroup{}, err
	}
	return item, nil
}

func (s *Service) CreateMenu(ctx context.Context, req MenuUpsertRequest) (models.MenuGroup, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.MenuGroup{}, ErrInvalidSlug
	}

	now := time.Now().In(s.location)
	item := models.MenuGroup{
		ID:        primitive.NewObjectID().Hex(),
		Slug:      slug,
		Title:     strings.TrimSpace(req.Title),
		Items:     req.items(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.menus.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.MenuGroup{}, ErrSlugExists
		}
		return models.MenuGroup{}, err
	}
	s.invalidate(ctx, cacheKeyMenus)
	return item, nil
}

func (s *Service) UpdateMenu(ctx context.Context, id string, req MenuUpsertRequest) (models.MenuGroup, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.MenuGroup{}, ErrInvalidSlug
	}

	set := bson.M{
		"slug":      slug,
		"title":     strings.TrimSpace(req.Title),
		"items":     req.items(),
		"updatedAt": time.Now().In(s.location),
	}

	updated, err := s.menus.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MenuGroup{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.MenuGroup{}, ErrSlugExists
		}
		return models.MenuGroup{}, err
	}
	s.invalidate(ctx, cacheKeyMenus)
	return updated, nil
}

func (s *Service) DeleteMenu(ctx context.Context, id string) error {
	deleted, err := s.menus.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx, cacheKeyMenus)
	return nil
}

func (s *Service) ListSolutions(ctx context.Context) ([]models.Solution, error) {
	var cached []models.Solution
	if hit := s.cacheGet(ctx, cacheKeySolutions, &cached); hit {
		return cached, nil
	}
	items, err := s.solutions.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeySolutions, items)
	return items, nil
}

func (s *Service) GetSolutionBySlug(ctx context.Context, slug string) (models.Solution, error) {
	item, err := s.solutions.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Solution{}, ErrNotFound
		}
		return models.Solution{}, err
	}
	return item, nil
}

func (s *Service) CreateSolution(ctx context.Context, req SolutionUpsertRequest) (models.Solution, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Solution{}, ErrInvalidSlug
	}

	now := time.Now().In(s.location)
	item := models.Solution{
		ID:           primitive.NewObjectID().Hex(),
		Slug:         slug,
		Title:        strings.TrimSpace(req.Title),
		Subtitle:     strings.TrimSpace(req.Subtitle),
		Description:  strings.TrimSpace(req.Description),
		HeroImage:    strings.TrimSpace(req.HeroImage),
		Workflow:     steps(req.Workflow),
		Expertise:    steps(req.Expertise),
		Deliverables: deliverables(req.Deliverables),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.solutions.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Solution{}, ErrSlugExists
		}
		return models.Solution{}, err
	}
	s.invalidate(ctx, cacheKeySolutions)
	return item, nil
}

func (s *Service) UpdateSolution(ctx context.Context, id string, req SolutionUpsertRequest) (models.Solution, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Solution{}, ErrInvalidSlug
	}

	set := bson.M{
		"slug":         slug,
		"title":        strings.TrimSpace(req.Title),
		"subtitle":     strings.TrimSpace(req.Subtitle),
		"description":  strings.TrimSpace(req.Description),
		"heroImage":    strings.TrimSpace(req.HeroImage),
		"workflow":     steps(req.Workflow),
		"expertise":    steps(req.Expertise),
		"deliverables": deliverables(req.Deliverables),
		"updatedAt":    time.Now().In(s.location),
	}

	updated, err := s.solutions.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Solution{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Solution{}, ErrSlugExists
		}
		return models.Solution{}, err
	}
	s.invalidate(ctx, cacheKeySolutions)
	return updated, nil
}

func (s *Service) DeleteSolution(ctx context.Context, id string) error {
	deleted, err := s.solutions.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx, cacheKeySolutions)
	return nil
}

func (s *Service) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	var cached []models.Industry
	if hit := s.cacheGet(ctx, cacheKeyIndustries, &cached); hit {
		return cached, nil
	}
	items, err := s.industries.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyIndustries, items)
	return items, nil
}

func (s *Service) GetIndustryBySlug(ctx context.Context, slug string) (models.Industry, error) {
	item, err := s.industries.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Industry{}, ErrNotFound
		}
		return models.Industry{}, err
	}
	return item, nil
}

func (s *Service) CreateIndustry(ctx context.Context, req IndustryUpsertRequest) (models.Industry, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Industry{}, ErrInvalidSlug
	}

	now := time.Now().In(s.location)
	item := models.Industry{
		ID:         primitive.NewObjectID().Hex(),
		Slug:       slug,
		Title:      strings.TrimSpace(req.Title),
		Overview:   strings.TrimSpace(req.Overview),
		Challenges: steps(req.Challenges),
		Solutions:  steps(req.Solutions),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.industries.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Industry{}, ErrSlugExists
		}
		return models.Industry{}, err
	}
	s.invalidate(ctx, cacheKeyIndustries)
	return item, nil
}

func (s *Service) UpdateIndustry(ctx context.Context, id string, req IndustryUpsertRequest) (models.Industry, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Industry{}, ErrInvalidSlug
	}

	set := bson.M{
		"slug":      slug,
		"title":     strings.TrimSpace(req.Title),
		"overview":  strings.TrimSpace(req.Overview),
		"challenges": steps(req.Challenges),
		"solutions": steps(req.Solutions),
		"updatedAt": time.Now().In(s.location),
	}

	updated, err := s.industries.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Industry{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Industry{}, ErrSlugExists
		}
		return models.Industry{}, err
	}
	s.invalidate(ctx, cacheKeyIndustries)
	return updated, nil
}

func (s *Service) DeleteIndustry(ctx context.Context, id string) error {
	deleted, err := s.industries.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx, cacheKeyIndustries)
	return nil
}

// cacheGet is best effort: a cache failure falls through to the repository.
func (s *Service) cacheGet(ctx context.Context, key string, v interface{}) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, key, raw, s.cacheTTL)
}

func (s *Service) invalidate(ctx context.Context, key string) {
	_ = s.cache.Delete(ctx, key)
}

func normalizeSlug(slug, title string) string {
	raw := strings.TrimSpace(slug)
	if raw == "" {
		raw = strings.TrimSpace(title)
	}
	return utils.Slugify(raw)
}
