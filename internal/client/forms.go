package client

import (
	"context"
	"net/http"
	"net/url"

	"corus-backend/internal/models"
)

// Public form submissions. Unlike content reads these never substitute
// fallback data: a failure propagates to the caller so the UI can show it.

type CreateConsultationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Message     string `json:"message"`
}

func (c *Client) CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*models.Consultation, error) {
	var item models.Consultation
	if err := c.post(ctx, "/api/consultations", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type CreateScheduleRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Company       string `json:"company,omitempty"`
	MeetingType   string `json:"meetingType"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Timezone      string `json:"timezone,omitempty"`
	Message       string `json:"message,omitempty"`
}

func (c *Client) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	var item models.Schedule
	if err := c.post(ctx, "/api/schedules", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// FetchAvailableSlots returns the open booking times for a YYYY-MM-DD date.
func (c *Client) FetchAvailableSlots(ctx context.Context, date string) ([]string, error) {
	var slots []string
	path := "/api/schedules/slots?" + url.Values{"date": {date}}.Encode()
	if err := c.get(ctx, path, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (c *Client) SubscribeNewsletter(ctx context.Context, req SubscribeRequest) (*models.NewsletterSubscriber, error) {
	var item models.NewsletterSubscriber
	if err := c.post(ctx, "/api/newsletter/subscribe", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UnsubscribeNewsletter(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := c.do(ctx, http.MethodPost, "/api/newsletter/unsubscribe", body)
	return err
}

type RecordConsentRequest struct {
	Consent   bool   `json:"consent"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent,omitempty"`
}

func (c *Client) RecordConsent(ctx context.Context, req RecordConsentRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/consent", req)
	return err
}
