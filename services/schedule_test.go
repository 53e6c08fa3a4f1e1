package services

import (
	"testing"

	"roombook-backend/models"
)

func TestTimeSlotsGrid(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 33 {
		t.Fatalf("expected 33 slots from 08:00 to 24:00, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("grid should open at 08:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "24:00" {
		t.Errorf("grid should close at 24:00, got %s", slots[len(slots)-1])
	}

	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Errorf("grid not strictly increasing at %d: %s <= %s", i, slots[i], slots[i-1])
		}
	}
}

func TestIsSlot(t *testing.T) {
	cases := map[string]bool{
		"08:00": true,
		"23:30": true,
		"24:00": true,
		"09:15": false,
		"07:30": false,
		"8:00":  false,
		"":      false,
	}
	for in, want := range cases {
		if got := IsSlot(in); got != want {
			t.Errorf("IsSlot(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAvailableEndTimes(t *testing.T) {
	ends := AvailableEndTimes("23:30")
	if len(ends) != 1 || ends[0] != "24:00" {
		t.Errorf("after 23:30 only 24:00 should remain, got %v", ends)
	}

	ends = AvailableEndTimes("08:00")
	if len(ends) != 32 {
		t.Fatalf("expected 32 end times after 08:00, got %d", len(ends))
	}
	if ends[0] != "08:30" {
		t.Errorf("first end time after 08:00 should be 08:30, got %s", ends[0])
	}
	for _, e := range ends {
		if e <= "08:00" {
			t.Errorf("end time %s not after start", e)
		}
	}
}

func TestGroupByDay(t *testing.T) {
	reservations := []models.Reservation{
		{ID: "a", Date: "2025-01-01T09:00Z"},
		{ID: "b", Date: "2025-01-01T15:00Z"},
		{ID: "c", Date: "2025-01-02T09:00Z"},
	}

	grouped := GroupByDay(reservations)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(grouped))
	}
	if len(grouped["2025-01-01"]) != 2 {
		t.Errorf("expected 2 reservations on 2025-01-01, got %d", len(grouped["2025-01-01"]))
	}
	if len(grouped["2025-01-02"]) != 1 {
		t.Errorf("expected 1 reservation on 2025-01-02, got %d", len(grouped["2025-01-02"]))
	}
}

func TestGroupByDayNormalizedTimestamps(t *testing.T) {
	// Stored dates are RFC 3339; midnight UTC and an afternoon time on the
	// same day land in the same group.
	reservations := []models.Reservation{
		{ID: "a", Date: "2025-06-01T00:00:00Z"},
		{ID: "b", Date: "2025-06-01T15:30:00Z"},
	}

	grouped := GroupByDay(reservations)
	if len(grouped["2025-06-01"]) != 2 {
		t.Errorf("expected both reservations under 2025-06-01, got %v", grouped)
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	if got := GroupByDay(nil); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}
