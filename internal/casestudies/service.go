package casestudies

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/models"
	"corus-backend/internal/utils"
)

var (
	ErrNotFound    = errors.New("case study not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (models.CaseStudy, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.CaseStudy{}, ErrInvalidSlug
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}

	now := time.Now().In(s.location)
	item := models.CaseStudy{
		ID:              primitive.NewObjectID().Hex(),
		Slug:            slug,
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Industry:        strings.TrimSpace(req.Industry),
		Client:          strings.TrimSpace(req.Client),
		Challenge:       strings.TrimSpace(req.Challenge),
		Solution:        strings.TrimSpace(req.Solution),
		Results:         strings.TrimSpace(req.Results),
		Technologies:    req.Technologies,
		Status:          status,
		ProjectDuration: strings.TrimSpace(req.ProjectDuration),
		TeamSize:        req.TeamSize,
		Budget:          req.Budget,
		Testimonial:     testimonial(req.Testimonial),
		Image:           strings.TrimSpace(req.Image),
		Gallery:         req.Gallery,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.CaseStudy{}, ErrSlugExists
		}
		return models.CaseStudy{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (models.CaseStudy, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.CaseStudy{}, ErrInvalidSlug
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}

	set := bson.M{
		"slug":            slug,
		"title":           strings.TrimSpace(req.Title),
		"description":     strings.TrimSpace(req.Description),
		"industry":        strings.TrimSpace(req.Industry),
		"client":          strings.TrimSpace(req.Client),
		"challenge":       strings.TrimSpace(req.Challenge),
		"solution":        strings.TrimSpace(req.Solution),
		"results":         strings.TrimSpace(req.Results),
		"technologies":    req.Technologies,
		"status":          status,
		"projectDuration": strings.TrimSpace(req.ProjectDuration),
		"teamSize":        req.TeamSize,
		"budget":          req.Budget,
		"testimonial":     testimonial(req.Testimonial),
		"image":           strings.TrimSpace(req.Image),
		"gallery":         req.Gallery,
		"updatedAt":       time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.CaseStudy{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.CaseStudy{}, ErrSlugExists
		}
		return models.CaseStudy{}, err
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

func (s *Service) ListPublished(ctx context.Context, filter PublicListFilter) ([]models.CaseStudy, error) {
	filter.Industry = strings.TrimSpace(filter.Industry)
	return s.repo.ListPublished(ctx, filter)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (models.CaseStudy, error) {
	item, err := s.repo.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.CaseStudy{}, ErrNotFound
		}
		return models.CaseStudy{}, err
	}
	return item, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.CaseStudy, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Industry = strings.TrimSpace(filter.Industry)
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.repo.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountAdmin(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func testimonial(req *TestimonialRequest) *models.Testimonial {
	if req == nil {
		return nil
	}
	return &models.Testimonial{
		Quote:    strings.TrimSpace(req.Quote),
		Author:   strings.TrimSpace(req.Author),
		Position: strings.TrimSpace(req.Position),
	}
}

func normalizeSlug(slug, title string) string {
	raw := strings.TrimSpace(slug)
	if raw == "" {
		raw = strings.TrimSpace(title)
	}
	return utils.Slugify(raw)
}
