package blogs

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
	ErrNotFound    = errors.New("blog not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

// wordsPerMinute drives the read-time estimate when the author leaves it out.
const wordsPerMinute = 200

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (models.Blog, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Blog{}, ErrInvalidSlug
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}

	now := time.Now().In(s.location)
	item := models.Blog{
		ID:       primitive.NewObjectID().Hex(),
		Slug:     slug,
		Title:    strings.TrimSpace(req.Title),
		Excerpt:  strings.TrimSpace(req.Excerpt),
		Content:  req.Content,
		Author:   strings.TrimSpace(req.Author),
		Category: strings.TrimSpace(req.Category),
		Status:   status,
		Tags:     trimTags(req.Tags),
		ReadTime: readTime(req.ReadTime, req.Content),
		Image:    strings.TrimSpace(req.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == models.BlogStatusPublished {
		item.PublishedAt = now
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Blog{}, ErrSlugExists
		}
		return models.Blog{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (models.Blog, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return models.Blog{}, ErrInvalidSlug
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}

	now := time.Now().In(s.location)
	set := bson.M{
		"slug":      slug,
		"title":     strings.TrimSpace(req.Title),
		"excerpt":   strings.TrimSpace(req.Excerpt),
		"content":   req.Content,
		"author":    strings.TrimSpace(req.Author),
		"category":  strings.TrimSpace(req.Category),
		"status":    status,
		"tags":      trimTags(req.Tags),
		"readTime":  readTime(req.ReadTime, req.Content),
		"image":     strings.TrimSpace(req.Image),
		"updatedAt": now,
	}
	if status == models.BlogStatusPublished {
		set["publishedAt"] = now
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Blog{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Blog{}, ErrSlugExists
		}
		return models.Blog{}, err
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

func (s *Service) ListPublished(ctx context.Context, filter PublicListFilter) ([]models.Blog, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Tag = strings.TrimSpace(filter.Tag)
	return s.repo.ListPublished(ctx, filter)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (models.Blog, error) {
	item, err := s.repo.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Blog{}, ErrNotFound
		}
		return models.Blog{}, err
	}
	return item, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Blog, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Category = strings.TrimSpace(filter.Category)
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

func readTime(explicit int, content string) int {
	if explicit > 0 {
		return explicit
	}
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func trimTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalizeSlug(slug, title string) string {
	raw := strings.TrimSpace(slug)
	if raw == "" {
		raw = strings.TrimSpace(title)
	}
	return utils.Slugify(raw)
}
