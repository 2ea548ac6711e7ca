package schedules

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

var (
	ErrNotFound      = errors.New("schedule not found")
	ErrDateInPast    = errors.New("date is in the past")
	ErrSlotTaken     = errors.New("slot already booked")
	ErrSlotNotOpen   = errors.New("slot outside office hours")
	ErrSlotInPast    = errors.New("slot already passed")
)

// Notifier sends booking lifecycle mail. Failures are logged, never
// surfaced to the caller.
type Notifier interface {
	SendScheduleReceived(ctx context.Context, item models.Schedule) (string, error)
	SendScheduleConfirmed(ctx context.Context, item models.Schedule) (string, error)
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
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location, notifier Notifier, recorder ActivityRecorder, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Schedule, error) {
	date := strings.TrimSpace(req.PreferredDate)
	slot := strings.TrimSpace(req.PreferredTime)
	now := s.now()

	past, err := IsDatePast(date, s.location, now)
	if err != nil {
		return models.Schedule{}, err
	}
	if past {
		return models.Schedule{}, ErrDateInPast
	}

	allowed, err := IsSlotAllowed(date, slot, s.location)
	if err != nil {
		return models.Schedule{}, err
	}
	if !allowed {
		return models.Schedule{}, ErrSlotNotOpen
	}

	slotPast, err := IsSlotPast(date, slot, s.location, now)
	if err != nil {
		return models.Schedule{}, err
	}
	if slotPast {
		return models.Schedule{}, ErrSlotInPast
	}

	reserved, err := s.repo.ReservedTimes(ctx, date)
	if err != nil {
		return models.Schedule{}, err
	}
	if reserved[slot] {
		return models.Schedule{}, ErrSlotTaken
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = s.location.String()
	}

	createdAt := now.In(s.location)
	item := models.Schedule{
		ID:            primitive.NewObjectID().Hex(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Company:       strings.TrimSpace(req.Company),
		MeetingType:   strings.TrimSpace(req.MeetingType),
		PreferredDate: date,
		PreferredTime: slot,
		Timezone:      tz,
		Message:       strings.TrimSpace(req.Message),
		Status:        models.ScheduleStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return models.Schedule{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordActivity(ctx, models.Activity{
			Type:        "meeting",
			Title:       "New meeting booked",
			Description: item.Name + " booked a " + item.MeetingType + " meeting for " + item.PreferredDate + " " + item.PreferredTime,
			User:        item.Email,
			Priority:    models.PriorityMedium,
		})
	}

	if s.notifier != nil {
		go s.notifyReceived(item)
	}

	return item, nil
}

func (s *Service) notifyReceived(item models.Schedule) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := s.notifier.SendScheduleReceived(ctx, item); err != nil {
		s.log.Warn("schedule received mail failed",
			slog.String("schedule_id", item.ID),
			slog.String("error", err.Error()),
		)
	}
}

// AvailableSlots lists the open times for a date, dropping reserved and
// already-passed slots.
func (s *Service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	date = strings.TrimSpace(date)
	now := s.now()

	past, err := IsDatePast(date, s.location, now)
	if err != nil {
		return nil, err
	}
	if past {
		return []string{}, nil
	}

	slots, err := GenerateSlots(date, s.location)
	if err != nil {
		return nil, err
	}
	slots, err = FilterPastSlots(date, slots, s.location, now)
	if err != nil {
		return nil, err
	}

	reserved, err := s.repo.ReservedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	return FilterReserved(slots, reserved), nil
}

func (s *Service) AdminUpdate(ctx context.Context, id string, req AdminUpdateRequest) (models.Schedule, error) {
	set := bson.M{
		"status":      req.Status,
		"meetingLink": strings.TrimSpace(req.MeetingLink),
		"adminNotes":  strings.TrimSpace(req.AdminNotes),
		"updatedAt":   s.now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Schedule{}, ErrNotFound
		}
		return models.Schedule{}, err
	}

	if s.notifier != nil && updated.Status == models.ScheduleStatusConfirmed {
		go func(item models.Schedule) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if _, err := s.notifier.SendScheduleConfirmed(ctx, item); err != nil {
				s.log.Warn("schedule confirmed mail failed",
					slog.String("schedule_id", item.ID),
					slog.String("error", err.Error()),
				)
			}
		}(updated)
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

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Schedule, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Date = strings.TrimSpace(filter.Date)
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
