// Package team manages staff records in the back office.
package team

type UpsertRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Role        string   `json:"role" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Position    string   `json:"position"`
	Phone       string   `json:"phone" validate:"omitempty,phone"`
	Avatar      string   `json:"avatar"`
	Status      string   `json:"status" validate:"required,oneof=active inactive on-leave"`
	JoinDate    string   `json:"joinDate" validate:"omitempty,date"`
	Skills      []string `json:"skills"`
	Projects    []string `json:"projects"`
	Performance int      `json:"performance" validate:"min=0,max=100"`
}

type AdminListFilter struct {
	Status     string
	Department string
	Search     string
}
