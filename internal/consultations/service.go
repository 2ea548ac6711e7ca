package consultations

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/models"
)

var ErrNotFound = errors.New("consultation not found")

// Notifier sends the acknowledgement mail after a form submission. Delivery
// is best effort and never fails the request.
type Notifier interface {
	SendConsultationAcknowledgement(ctx context.Context, item models.Consultation) (string, error)
	SendConsultationAlert(ctx context.Context, item models.Consultation) (string, error)
}

// ActivityRecorder feeds the back-office event stream.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, item models.Activity)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
	recorder ActivityRecorder
	log      *slog.Logger
}

func NewService(repo Repository, location *time.Location, notifier Notifier, recorder ActivityRecorder, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
		recorder: recorder,
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Consultation, error) {
	now := time.Now().In(s.location)
	item := models.Consultation{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		ProjectType: strings.TrimSpace(req.ProjectType),
		Budget:      strings.TrimSpace(req.Budget),
		Timeline:    strings.TrimSpace(req.Timeline),
		Message:     strings.TrimSpace(req.Message),
		Status:      models.ConsultationStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return models.Consultation{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordActivity(ctx, models.Activity{
			Type:        "consultation",
			Title:       "New consultation request",
			Description: item.Name + " requested a consultation",
			User:        item.Email,
			Priority:    models.PriorityHigh,
		})
	}

	if s.notifier != nil {
		go s.notify(item)
	}

	return item, nil
}

// notify runs detached from the request so a slow mail provider cannot hold
// the form response.
func (s *Service) notify(item models.Consultation) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := s.notifier.SendConsultationAcknowledgement(ctx, item); err != nil {
		s.log.Warn("consultation acknowledgement mail failed",
			slog.String("consultation_id", item.ID),
			slog.String("error", err.Error()),
		)
	}
	if _, err := s.notifier.SendConsultationAlert(ctx, item); err != nil {
		s.log.Warn("consultation alert mail failed",
			slog.String("consultation_id", item.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req StatusUpdateRequest) (models.Consultation, error) {
	set := bson.M{
		"status":    req.Status,
		"updatedAt": time.Now().In(s.location),
	}

	updated, err := s.repo.UpdateStatus(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Consultation{}, ErrNotFound
		}
		return models.Consultation{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Consultation, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
