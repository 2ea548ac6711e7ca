package client

import (
	"context"
	"fmt"
	"log/slog"

	"corus-backend/internal/fallback"
	"corus-backend/internal/models"
)

// Public content reads never fail outright: on a transport or application
// error, and on a successful but empty list, the bundled fallback dataset is
// substituted so marketing pages keep rendering through an outage.
// Substituted records carry synthesized identifiers and current timestamps.

func (c *Client) FetchMenus(ctx context.Context) ([]models.MenuGroup, error) {
	var items []models.MenuGroup
	if err := c.get(ctx, "/api/menus", &items); err != nil || len(items) == 0 {
		c.logFallback("menus", err)
		return c.fallbackMenus(), nil
	}
	return items, nil
}

func (c *Client) FetchMenuBySlug(ctx context.Context, slug string) (*models.MenuGroup, error) {
	var item models.MenuGroup
	if err := c.get(ctx, "/api/menus/"+slug, &item); err != nil {
		c.logFallback("menus", err)
		for _, fb := range c.fallbackMenus() {
			if fb.Slug == slug {
				return &fb, nil
			}
		}
		return nil, fmt.Errorf("menu %q: %w", slug, ErrNotFound)
	}
	return &item, nil
}

func (c *Client) FetchSolutions(ctx context.Context) ([]models.Solution, error) {
	var items []models.Solution
	if err := c.get(ctx, "/api/menus/solutions/items", &items); err != nil || len(items) == 0 {
		c.logFallback("solutions", err)
		return c.fallbackSolutions(), nil
	}
	return items, nil
}

func (c *Client) FetchSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error) {
	var item models.Solution
	if err := c.get(ctx, "/api/menus/solutions/items/"+slug, &item); err != nil {
		c.logFallback("solutions", err)
		for _, fb := range c.fallbackSolutions() {
			if fb.Slug == slug {
				return &fb, nil
			}
		}
		return nil, fmt.Errorf("solution %q: %w", slug, ErrNotFound)
	}
	return &item, nil
}

func (c *Client) FetchIndustries(ctx context.Context) ([]models.Industry, error) {
	var items []models.Industry
	if err := c.get(ctx, "/api/menus/industries/items", &items); err != nil || len(items) == 0 {
		c.logFallback("industries", err)
		return c.fallbackIndustries(), nil
	}
	return items, nil
}

func (c *Client) FetchIndustryBySlug(ctx context.Context, slug string) (*models.Industry, error) {
	var item models.Industry
	if err := c.get(ctx, "/api/menus/industries/items/"+slug, &item); err != nil {
		c.logFallback("industries", err)
		for _, fb := range c.fallbackIndustries() {
			if fb.Slug == slug {
				return &fb, nil
			}
		}
		return nil, fmt.Errorf("industry %q: %w", slug, ErrNotFound)
	}
	return &item, nil
}

func (c *Client) FetchBlogs(ctx context.Context) ([]models.Blog, error) {
	var items []models.Blog
	if err := c.get(ctx, "/api/blogs", &items); err != nil || len(items) == 0 {
		c.logFallback("blogs", err)
		return c.fallbackBlogs(), nil
	}
	return items, nil
}

func (c *Client) FetchBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var item models.Blog
	if err := c.get(ctx, "/api/blogs/"+slug, &item); err != nil {
		c.logFallback("blogs", err)
		for _, fb := range c.fallbackBlogs() {
			if fb.Slug == slug {
				return &fb, nil
			}
		}
		return nil, fmt.Errorf("blog %q: %w", slug, ErrNotFound)
	}
	return &item, nil
}

func (c *Client) FetchCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	var items []models.CaseStudy
	if err := c.get(ctx, "/api/case-studies", &items); err != nil || len(items) == 0 {
		c.logFallback("case-studies", err)
		return c.fallbackCaseStudies(), nil
	}
	return items, nil
}

func (c *Client) FetchCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	var item models.CaseStudy
	if err := c.get(ctx, "/api/case-studies/"+slug, &item); err != nil {
		c.logFallback("case-studies", err)
		for _, fb := range c.fallbackCaseStudies() {
			if fb.Slug == slug {
				return &fb, nil
			}
		}
		return nil, fmt.Errorf("case study %q: %w", slug, ErrNotFound)
	}
	return &item, nil
}

// FetchStats falls back to the bundled counters when the service has no
// stats document yet or is unreachable.
func (c *Client) FetchStats(ctx context.Context) (models.StatsData, error) {
	var data models.StatsData
	if err := c.get(ctx, "/api/stats", &data); err != nil {
		c.logFallback("stats", err)
		return c.fallbackStats(), nil
	}
	return data, nil
}

func (c *Client) logFallback(resource string, err error) {
	if err == nil {
		c.log.Info("serving fallback data", slog.String("resource", resource), slog.String("reason", "empty result"))
		return
	}
	c.log.Info("serving fallback data", slog.String("resource", resource), slog.String("reason", err.Error()))
}

func (c *Client) fallbackMenus() []models.MenuGroup {
	now := c.now()
	items := fallback.Menus()
	for i := range items {
		items[i].ID = fallbackID("menu", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func (c *Client) fallbackSolutions() []models.Solution {
	now := c.now()
	items := fallback.Solutions()
	for i := range items {
		items[i].ID = fallbackID("solution", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func (c *Client) fallbackIndustries() []models.Industry {
	now := c.now()
	items := fallback.Industries()
	for i := range items {
		items[i].ID = fallbackID("industry", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func (c *Client) fallbackBlogs() []models.Blog {
	now := c.now()
	items := fallback.Blogs()
	for i := range items {
		items[i].ID = fallbackID("blog", items[i].Slug, i)
		items[i].Status = models.BlogStatusPublished
		items[i].PublishedAt = now
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func (c *Client) fallbackCaseStudies() []models.CaseStudy {
	now := c.now()
	items := fallback.CaseStudies()
	for i := range items {
		items[i].ID = fallbackID("case-study", items[i].Slug, i)
		items[i].Status = models.BlogStatusPublished
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func (c *Client) fallbackStats() models.StatsData {
	now := c.now()
	data := fallback.Stats()
	data.ID = fallbackID("stats", "", 0)
	data.LastUpdated = now
	data.CreatedAt = now
	data.UpdatedAt = now
	return data
}

func fallbackID(resource, slug string, index int) string {
	if slug != "" {
		return resource + "-" + slug
	}
	return fmt.Sprintf("%s-%d", resource, index)
}
