// Package blogs manages the insights section: published posts on the public
// site and full draft lifecycle in the back office.
package blogs

type UpsertRequest struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title" validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content" validate:"required"`
	Author   string   `json:"author" validate:"required"`
	Category string   `json:"category"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"readTime" validate:"omitempty,min=1"`
	Image    string   `json:"image"`
}

type PublicListFilter struct {
	Category string
	Tag      string
}

type AdminListFilter struct {
	Status   string
	Category string
	Search   string
}
