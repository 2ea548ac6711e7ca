// Package clients is the admin-only client roster feeding the dashboard and
// revenue analytics.
package clients

type UpsertRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"omitempty,phone"`
	Company       string  `json:"company" validate:"required"`
	Industry      string  `json:"industry"`
	Status        string  `json:"status" validate:"required,oneof=active inactive lead"`
	TotalProjects int     `json:"totalProjects" validate:"min=0"`
	TotalRevenue  float64 `json:"totalRevenue" validate:"min=0"`
	LastContact   string  `json:"lastContact" validate:"omitempty,date"`
	JoinDate      string  `json:"joinDate" validate:"omitempty,date"`
	Notes         string  `json:"notes"`
}

type AdminListFilter struct {
	Status   string
	Industry string
	Search   string
}
