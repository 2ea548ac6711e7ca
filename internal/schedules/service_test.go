package schedules

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"corus-backend/internal/models"
)

type fakeRepo struct {
	created  []models.Schedule
	reserved map[string]map[string]bool
	updated  models.Schedule
	updateErr error
}

func (f *fakeRepo) Create(ctx context.Context, item models.Schedule) error {
	f.created = append(f.created, item)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (models.Schedule, error) {
	if f.updateErr != nil {
		return models.Schedule{}, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	return id == "known", nil
}

func (f *fakeRepo) List(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]models.Schedule, error) {
	return nil, nil
}

func (f *fakeRepo) Count(ctx context.Context, filter AdminListFilter) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) ReservedTimes(ctx context.Context, date string) (map[string]bool, error) {
	if f.reserved == nil {
		return map[string]bool{}, nil
	}
	taken, ok := f.reserved[date]
	if !ok {
		return map[string]bool{}, nil
	}
	return taken, nil
}

func (f *fakeRepo) CountUpcoming(ctx context.Context, fromDate string) (int64, error) {
	return int64(len(f.created)), nil
}

func testService(t *testing.T, repo Repository) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	svc := NewService(repo, loc, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// Monday 2026-03-02 10:00 local.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
	}
	return svc
}

func validRequest() CreateRequest {
	return CreateRequest{
		Name:          "Jamal Uddin",
		Email:         "jamal@example.com",
		MeetingType:   models.MeetingTypeConsultation,
		PreferredDate: "2026-03-03",
		PreferredTime: "09:30",
	}
}

func TestCreateBooksOpenSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(t, repo)

	item, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Status != models.ScheduleStatusPending {
		t.Errorf("status = %q, want pending", item.Status)
	}
	if item.ID == "" {
		t.Error("missing generated id")
	}
	if item.Timezone != "Asia/Dhaka" {
		t.Errorf("timezone defaulted to %q, want location name", item.Timezone)
	}
	if len(repo.created) != 1 {
		t.Fatalf("persisted %d schedules, want 1", len(repo.created))
	}
}

func TestCreateRejectsPastDate(t *testing.T) {
	svc := testService(t, &fakeRepo{})

	req := validRequest()
	req.PreferredDate = "2026-03-01"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrDateInPast) {
		t.Errorf("err = %v, want ErrDateInPast", err)
	}
}

func TestCreateRejectsPassedSlotToday(t *testing.T) {
	svc := testService(t, &fakeRepo{})

	req := validRequest()
	req.PreferredDate = "2026-03-02"
	req.PreferredTime = "09:00"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrSlotInPast) {
		t.Errorf("err = %v, want ErrSlotInPast", err)
	}
}

func TestCreateRejectsClosedSlot(t *testing.T) {
	svc := testService(t, &fakeRepo{})

	cases := []struct {
		name string
		date string
		slot string
	}{
		{"lunch break", "2026-03-03", "12:30"},
		{"before opening", "2026-03-03", "08:30"},
		{"sunday", "2026-03-08", "10:00"},
		{"off-grid minute", "2026-03-03", "09:15"},
	}
	for _, tc := range cases {
		req := validRequest()
		req.PreferredDate = tc.date
		req.PreferredTime = tc.slot
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrSlotNotOpen) {
			t.Errorf("%s: err = %v, want ErrSlotNotOpen", tc.name, err)
		}
	}
}

func TestCreateRejectsReservedSlot(t *testing.T) {
	repo := &fakeRepo{reserved: map[string]map[string]bool{
		"2026-03-03": {"09:30": true},
	}}
	svc := testService(t, repo)

	if _, err := svc.Create(context.Background(), validRequest()); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("err = %v, want ErrSlotTaken", err)
	}
}

func TestAvailableSlotsDropsReservedAndPast(t *testing.T) {
	repo := &fakeRepo{reserved: map[string]map[string]bool{
		"2026-03-02": {"10:30": true},
	}}
	svc := testService(t, repo)

	// Today at 10:00: morning slots before 10:00 are gone, 10:30 is booked.
	slots, err := svc.AvailableSlots(context.Background(), "2026-03-02")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	for _, s := range slots {
		if s == "09:00" || s == "09:30" || s == "10:00" || s == "10:30" {
			t.Errorf("slot %s should not be offered", s)
		}
	}
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots to remain")
	}
	if slots[0] != "11:00" {
		t.Errorf("first open slot = %s, want 11:00", slots[0])
	}
}

func TestAvailableSlotsEmptyForPastDate(t *testing.T) {
	svc := testService(t, &fakeRepo{})

	slots, err := svc.AvailableSlots(context.Background(), "2026-02-28")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("past date returned %d slots, want 0", len(slots))
	}
}

func TestAdminUpdateMapsMissingToNotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: mongo.ErrNoDocuments}
	svc := testService(t, repo)

	_, err := svc.AdminUpdate(context.Background(), "missing", AdminUpdateRequest{Status: models.ScheduleStatusConfirmed})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteUnknownIsNotFound(t *testing.T) {
	svc := testService(t, &fakeRepo{})

	if err := svc.Delete(context.Background(), "unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "known"); err != nil {
		t.Errorf("known id: err = %v", err)
	}
}
