// Package projects is the admin-only project tracker behind the dashboard
// and financial views.
package projects

type UpsertRequest struct {
	Name         string   `json:"name" validate:"required"`
	Client       string   `json:"client" validate:"required"`
	Status       string   `json:"status" validate:"required,oneof=planning active on-hold completed cancelled"`
	Priority     string   `json:"priority" validate:"required,oneof=low medium high critical"`
	StartDate    string   `json:"startDate" validate:"required,date"`
	EndDate      string   `json:"endDate" validate:"omitempty,date"`
	Budget       float64  `json:"budget" validate:"min=0"`
	Spent        float64  `json:"spent" validate:"min=0"`
	Progress     int      `json:"progress" validate:"min=0,max=100"`
	Team         []string `json:"team"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Deliverables []string `json:"deliverables"`
}

type AdminListFilter struct {
	Status   string
	Priority string
	Search   string
}
