// Package newsletter tracks mailing-list subscribers. Subscribing again
// after an unsubscribe reactivates the existing record instead of failing.
package newsletter

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AdminListFilter struct {
	Active *bool
	Search string
}
