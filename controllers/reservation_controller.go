// controllers/reservation_controller.go
package controllers

import (
	"errors"
	"net/http"

	"roombook-backend/services"
	"roombook-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// ReservationPayload carries the raw form fields. Field-level validation
// lives in the service, so nothing here is binding-required except that the
// body must be JSON at all.
type ReservationPayload struct {
	MeetingName  string `json:"meetingName"`
	PersonName   string `json:"personName"`
	MobileNumber string `json:"mobileNumber"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	RoomSize     string `json:"roomSize"`
	PIN          string `json:"pin"`
}

func (p ReservationPayload) toInput() services.ReservationInput {
	return services.ReservationInput{
		MeetingName:  p.MeetingName,
		PersonName:   p.PersonName,
		MobileNumber: p.MobileNumber,
		Date:         p.Date,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		RoomSize:     p.RoomSize,
		PIN:          p.PIN,
	}
}

// DeleteReservationPayload holds the pin typed into the confirmation dialog.
// Variable length on purpose: the admin override token is not 4 digits.
type DeleteReservationPayload struct {
	PIN string `json:"pin" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

// CreateReservation (POST /api/reservations)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload ReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reservation, err := rc.Svc.Create(payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// GetReservations (GET /api/reservations?orderBy=date&direction=desc)
func (rc *ReservationController) GetReservations(c *gin.Context) {
	orderBy := c.DefaultQuery("orderBy", "date")
	direction := c.DefaultQuery("direction", "desc")

	reservations, err := rc.Svc.List(orderBy, direction)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reservations.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// GetReservationByID (GET /api/reservations/:id)
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.Svc.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// UpdateReservation (PUT /api/reservations/:id)
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var payload ReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reservation, err := rc.Svc.Update(c.Param("id"), payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// DeleteReservation (DELETE /api/reservations/:id)
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	var payload DeleteReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "PIN is required.")
		return
	}

	if err := rc.Svc.Delete(c.Param("id"), payload.PIN); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation deleted successfully."})
}

// GetCalendar (GET /api/reservations/calendar)
func (rc *ReservationController) GetCalendar(c *gin.Context) {
	days, err := rc.Svc.CalendarDays()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reservations.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, days)
}

// GetTimeSlots (GET /api/reservations/timeslots?after=HH:MM)
// Without "after" it returns the whole grid; with it, the valid end times
// for that start.
func (rc *ReservationController) GetTimeSlots(c *gin.Context) {
	after := c.Query("after")
	if after == "" {
		utils.JSONSuccess(c, http.StatusOK, services.TimeSlots())
		return
	}
	if !services.IsSlot(after) {
		utils.JSONError(c, http.StatusBadRequest, "after must be a half-hour time between 08:00 and 23:30.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, services.AvailableEndTimes(after))
}

// respondServiceError maps domain errors onto HTTP statuses. Anything not in
// the taxonomy is a persistence failure and stays generic.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONValidationError(c, vErr.Fields)
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Reservation not found.")
	case errors.Is(err, services.ErrInvalidPIN):
		utils.JSONError(c, http.StatusForbidden, "Invalid PIN.")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
