package schedules

import (
	"testing"
	"time"
)

func mustLoadLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestGenerateSlotsWeekday(t *testing.T) {
	loc := mustLoadLoc(t)
	slots, err := GenerateSlots("2026-03-02", loc)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "16:30" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateSlotsSkipsLunch(t *testing.T) {
	loc := mustLoadLoc(t)
	slots, err := GenerateSlots("2026-03-02", loc)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	for _, s := range slots {
		if s == "12:00" || s == "12:30" {
			t.Fatalf("lunch slot %s should not be offered", s)
		}
	}
}

func TestGenerateSlotsSaturday(t *testing.T) {
	loc := mustLoadLoc(t)
	slots, err := GenerateSlots("2026-03-07", loc)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	if slots[0] != "10:00" || slots[len(slots)-1] != "12:30" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateSlotsSundayClosed(t *testing.T) {
	loc := mustLoadLoc(t)
	slots, err := GenerateSlots("2026-03-01", loc)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected 0 slots, got %d", len(slots))
	}
}

func TestIsDatePast(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)

	past, err := IsDatePast("2026-03-03", loc, now)
	if err != nil {
		t.Fatalf("IsDatePast error: %v", err)
	}
	if !past {
		t.Fatalf("expected date to be past")
	}

	past, err = IsDatePast("2026-03-04", loc, now)
	if err != nil {
		t.Fatalf("IsDatePast error: %v", err)
	}
	if past {
		t.Fatalf("expected today to be not past")
	}
}

func TestIsSlotPast(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)

	past, err := IsSlotPast("2026-03-04", "09:30", loc, now)
	if err != nil {
		t.Fatalf("IsSlotPast error: %v", err)
	}
	if !past {
		t.Fatalf("expected slot to be past")
	}

	past, err = IsSlotPast("2026-03-04", "10:30", loc, now)
	if err != nil {
		t.Fatalf("IsSlotPast error: %v", err)
	}
	if past {
		t.Fatalf("expected slot to be future")
	}
}

func TestFilterReserved(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}
	filtered := FilterReserved(slots, map[string]bool{"09:30": true})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(filtered))
	}
	if filtered[1] != "10:00" {
		t.Fatalf("unexpected slots: %v", filtered)
	}
}

func TestIsSlotAllowed(t *testing.T) {
	loc := mustLoadLoc(t)

	ok, err := IsSlotAllowed("2026-03-04", "13:30", loc)
	if err != nil {
		t.Fatalf("IsSlotAllowed error: %v", err)
	}
	if !ok {
		t.Fatalf("expected slot to be allowed")
	}

	ok, err = IsSlotAllowed("2026-03-04", "12:30", loc)
	if err != nil {
		t.Fatalf("IsSlotAllowed error: %v", err)
	}
	if ok {
		t.Fatalf("expected lunch slot to be rejected")
	}
}

func TestIsSlotAvailable(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 3, 4, 8, 0, 0, 0, loc)

	ok, err := IsSlotAvailable("2026-03-04", "09:00", loc, now, map[string]bool{"09:00": true})
	if err != nil {
		t.Fatalf("IsSlotAvailable error: %v", err)
	}
	if ok {
		t.Fatalf("expected reserved slot to be unavailable")
	}

	ok, err = IsSlotAvailable("2026-03-04", "09:30", loc, now, map[string]bool{})
	if err != nil {
		t.Fatalf("IsSlotAvailable error: %v", err)
	}
	if !ok {
		t.Fatalf("expected open slot to be available")
	}
}
