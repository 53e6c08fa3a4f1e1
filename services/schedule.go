// services/schedule.go
//
// Static half-hour slot grid for the booking form, plus the per-day grouping
// the calendar view renders. Pure functions, nothing here touches the store.
package services

import (
	"fmt"
	"time"

	"roombook-backend/models"
)

// Service window: bookings run on a half-hour grid from 08:00 up to 24:00.
const (
	slotOpenMinutes  = 8 * 60
	slotCloseMinutes = 24 * 60
	slotStepMinutes  = 30

	slotCloseLabel = "24:00"
)

// TimeSlots returns the full grid, "08:00" through "24:00" inclusive.
// "24:00" is only ever valid as an end time.
func TimeSlots() []string {
	slots := make([]string, 0, (slotCloseMinutes-slotOpenMinutes)/slotStepMinutes+1)
	for m := slotOpenMinutes; m <= slotCloseMinutes; m += slotStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// IsSlot reports whether s lies on the grid.
func IsSlot(s string) bool {
	for _, slot := range TimeSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableEndTimes lists every slot strictly after start. The fixed-width
// "HH:MM" format makes string comparison a valid ordering.
func AvailableEndTimes(start string) []string {
	var out []string
	for _, slot := range TimeSlots() {
		if slot > start {
			out = append(out, slot)
		}
	}
	return out
}

// GroupByDay keys reservations by the calendar-date portion of their stored
// timestamp. Used by the calendar view only, never persisted.
func GroupByDay(reservations []models.Reservation) map[string][]models.Reservation {
	grouped := make(map[string][]models.Reservation)
	for _, r := range reservations {
		grouped[dayKey(r.Date)] = append(grouped[dayKey(r.Date)], r)
	}
	return grouped
}

func dayKey(date string) string {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	// Stored dates are normalized, but be forgiving about hand-edited rows.
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}
