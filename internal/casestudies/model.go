// Package casestudies manages client success stories shown on the public
// site, with draft lifecycle in the back office.
package casestudies

type TestimonialRequest struct {
	Quote    string `json:"quote" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Position string `json:"position"`
}

type UpsertRequest struct {
	Slug            string              `json:"slug"`
	Title           string              `json:"title" validate:"required"`
	Description     string              `json:"description"`
	Industry        string              `json:"industry"`
	Client          string              `json:"client" validate:"required"`
	Challenge       string              `json:"challenge"`
	Solution        string              `json:"solution"`
	Results         string              `json:"results"`
	Technologies    []string            `json:"technologies"`
	Status          string              `json:"status" validate:"omitempty,oneof=draft published"`
	ProjectDuration string              `json:"projectDuration"`
	TeamSize        int                 `json:"teamSize" validate:"omitempty,min=1"`
	Budget          float64             `json:"budget" validate:"omitempty,min=0"`
	Testimonial     *TestimonialRequest `json:"testimonial"`
	Image           string              `json:"image"`
	Gallery         []string            `json:"gallery"`
}

type PublicListFilter struct {
	Industry string
}

type AdminListFilter struct {
	Status   string
	Industry string
	Search   string
}
