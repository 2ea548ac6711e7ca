// Package consultations handles the public "get a quote" form and the admin
// pipeline that tracks each request from new to completed.
package consultations

type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message" validate:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted in-progress completed"`
}

type AdminListFilter struct {
	Status string
	Search string
}
