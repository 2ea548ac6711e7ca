// Package content serves the slug-addressed marketing documents: navigation
// menus, solution pages, and industry pages. Public reads are open; writes go
// through the admin surface.
package content

import "corus-backend/internal/models"

type StepRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type DeliverableRequest struct {
	Item        string `json:"item" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type MenuItemRequest struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
	Slug  string `json:"slug"`
}

type MenuUpsertRequest struct {
	Slug  string            `json:"slug"`
	Title string            `json:"title" validate:"required"`
	Items []MenuItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SolutionUpsertRequest struct {
	Slug         string               `json:"slug"`
	Title        string               `json:"title" validate:"required"`
	Subtitle     string               `json:"subtitle"`
	Description  string               `json:"description"`
	HeroImage    string               `json:"heroImage"`
	Workflow     []StepRequest        `json:"workflow" validate:"omitempty,dive"`
	Expertise    []StepRequest        `json:"expertise" validate:"omitempty,dive"`
	Deliverables []DeliverableRequest `json:"deliverables" validate:"omitempty,dive"`
}

type IndustryUpsertRequest struct {
	Slug       string        `json:"slug"`
	Title      string        `json:"title" validate:"required"`
	Overview   string        `json:"overview"`
	Challenges []StepRequest `json:"challenges" validate:"omitempty,dive"`
	Solutions  []StepRequest `json:"solutions" validate:"omitempty,dive"`
}

func (r MenuUpsertRequest) items() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, models.MenuItem{Label: it.Label, Href: it.Href, Slug: it.Slug})
	}
	return items
}

func steps(reqs []StepRequest) []models.SolutionStep {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]models.SolutionStep, 0, len(reqs))
	for _, s := range reqs {
		out = append(out, models.SolutionStep{Title: s.Title, Description: s.Description})
	}
	return out
}

func deliverables(reqs []DeliverableRequest) []models.Deliverable {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]models.Deliverable, 0, len(reqs))
	for _, d := range reqs {
		out = append(out, models.Deliverable{Item: d.Item, Description: d.Description})
	}
	return out
}
