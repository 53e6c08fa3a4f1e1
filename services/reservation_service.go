// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"roombook-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("reservation not found")
	ErrInvalidPIN = errors.New("invalid pin")
)

// ValidationError reports every failing field at once so the form can show
// inline messages. It never accompanies a partial write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

var (
	mobileNumberRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	pinRe          = regexp.MustCompile(`^\d{4}$`)
)

// ReservationInput is the raw field set submitted by a form. Everything is a
// string; validation decides what is acceptable.
type ReservationInput struct {
	MeetingName  string
	PersonName   string
	MobileNumber string
	Date         string
	StartTime    string
	EndTime      string
	RoomSize     string
	PIN          string
}

// ReservationService wraps the *gorm.DB handle with the reservation rules.
// It holds no state of its own beyond its injected collaborators.
type ReservationService struct {
	DB       *gorm.DB
	AdminPIN string
	Logger   *zap.Logger
}

func NewReservationService(db *gorm.DB, adminPIN string, logger *zap.Logger) *ReservationService {
	return &ReservationService{DB: db, AdminPIN: adminPIN, Logger: logger}
}

// validate checks every field and collects per-field messages. checkPIN is
// false on update, where the stored PIN is kept as-is.
func (s *ReservationService) validate(input ReservationInput, checkPIN bool) map[string]string {
	fields := map[string]string{}

	if len(strings.TrimSpace(input.MeetingName)) < 3 {
		fields["meetingName"] = "Meeting name must be at least 3 characters"
	}
	if len(strings.TrimSpace(input.PersonName)) < 2 {
		fields["personName"] = "Person name must be at least 2 characters"
	}
	if !mobileNumberRe.MatchString(input.MobileNumber) {
		fields["mobileNumber"] = "Mobile number must be in XXX-XXX-XXXX format"
	}

	if strings.TrimSpace(input.Date) == "" {
		fields["date"] = "Please select a date."
	} else if _, err := normalizeDate(input.Date); err != nil {
		fields["date"] = "Invalid date."
	}

	switch {
	case input.StartTime == "":
		fields["startTime"] = "Start time is required"
	case !IsSlot(input.StartTime) || input.StartTime == slotCloseLabel:
		fields["startTime"] = "Start time must be on the half hour between 08:00 and 23:30."
	}

	switch {
	case input.EndTime == "":
		fields["endTime"] = "End time is required"
	case !IsSlot(input.EndTime):
		fields["endTime"] = "End time must be on the half hour between 08:30 and 24:00."
	case fields["startTime"] == "" && input.StartTime >= input.EndTime:
		fields["endTime"] = "End time must be after start time."
	}

	if input.RoomSize != models.RoomSizeSmall && input.RoomSize != models.RoomSizeLarge {
		fields["roomSize"] = "Room size must be small or large."
	}

	if checkPIN && !pinRe.MatchString(input.PIN) {
		fields["pin"] = "PIN must be 4 digits."
	}

	return fields
}

// normalizeDate accepts either a plain calendar date or a full timestamp and
// returns it as an RFC 3339 UTC string, the stored form.
func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", raw)
}

// Create validates the input and persists a new reservation with a fresh id.
// On validation failure nothing is written.
func (s *ReservationService) Create(input ReservationInput) (models.Reservation, error) {
	if fields := s.validate(input, true); len(fields) > 0 {
		return models.Reservation{}, &ValidationError{Fields: fields}
	}

	date, err := normalizeDate(input.Date)
	if err != nil {
		return models.Reservation{}, &ValidationError{Fields: map[string]string{"date": "Invalid date."}}
	}

	reservation := models.Reservation{
		ID:           uuid.NewString(),
		MeetingName:  strings.TrimSpace(input.MeetingName),
		PersonName:   strings.TrimSpace(input.PersonName),
		MobileNumber: input.MobileNumber,
		Date:         date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		RoomSize:     input.RoomSize,
		PIN:          input.PIN,
	}

	if err := s.DB.Create(&reservation).Error; err != nil {
		s.Logger.Error("failed to create reservation", zap.Error(err))
		return models.Reservation{}, fmt.Errorf("failed to save reservation: %w", err)
	}
	return reservation, nil
}

// Get is a plain lookup. Reads are unauthenticated.
func (s *ReservationService) Get(id string) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrNotFound
		}
		s.Logger.Error("failed to load reservation", zap.String("id", id), zap.Error(err))
		return models.Reservation{}, fmt.Errorf("failed to load reservation: %w", err)
	}
	return reservation, nil
}

// listColumns whitelists orderBy values to real columns.
var listColumns = map[string]string{
	"date":        "date",
	"startTime":   "start_time",
	"meetingName": "meeting_name",
	"personName":  "person_name",
}

// List returns every reservation. Default order is date descending, the
// order the list page shows.
func (s *ReservationService) List(orderBy, direction string) ([]models.Reservation, error) {
	column, ok := listColumns[orderBy]
	if !ok {
		column = "date"
	}
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}

	var reservations []models.Reservation
	if err := s.DB.Order(column + " " + dir).Find(&reservations).Error; err != nil {
		s.Logger.Error("failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// Update replaces the mutable fields of an existing reservation. The id and
// PIN are never touched; validation matches Create minus the PIN rule.
func (s *ReservationService) Update(id string, input ReservationInput) (models.Reservation, error) {
	if fields := s.validate(input, false); len(fields) > 0 {
		return models.Reservation{}, &ValidationError{Fields: fields}
	}

	reservation, err := s.Get(id)
	if err != nil {
		return models.Reservation{}, err
	}

	date, err := normalizeDate(input.Date)
	if err != nil {
		return models.Reservation{}, &ValidationError{Fields: map[string]string{"date": "Invalid date."}}
	}

	updates := map[string]interface{}{
		"meeting_name":  strings.TrimSpace(input.MeetingName),
		"person_name":   strings.TrimSpace(input.PersonName),
		"mobile_number": input.MobileNumber,
		"date":          date,
		"start_time":    input.StartTime,
		"end_time":      input.EndTime,
		"room_size":     input.RoomSize,
	}

	if err := s.DB.Model(&reservation).Updates(updates).Error; err != nil {
		s.Logger.Error("failed to update reservation", zap.String("id", id), zap.Error(err))
		return models.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}

	return s.Get(id)
}

// Delete removes a reservation for good. The supplied pin must match the
// record's pin exactly, or the admin override ignoring case.
func (s *ReservationService) Delete(id, suppliedPIN string) error {
	reservation, err := s.Get(id)
	if err != nil {
		return err
	}

	if !strings.EqualFold(suppliedPIN, s.AdminPIN) && suppliedPIN != reservation.PIN {
		return ErrInvalidPIN
	}

	if err := s.DB.Delete(&models.Reservation{}, "id = ?", id).Error; err != nil {
		s.Logger.Error("failed to delete reservation", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// CalendarDays returns all reservations grouped per day, earliest day first
// inside gorm's ordering; grouping itself is presentation-only.
func (s *ReservationService) CalendarDays() (map[string][]models.Reservation, error) {
	reservations, err := s.List("date", "asc")
	if err != nil {
		return nil, err
	}
	return GroupByDay(reservations), nil
}
