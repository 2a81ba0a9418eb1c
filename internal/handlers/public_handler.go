package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdarCosmetics/salon-scheduler/internal/catalog"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/httpresp"
	"github.com/AdarCosmetics/salon-scheduler/internal/schedule"
	ucBooking "github.com/AdarCosmetics/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
}

func NewPublicHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"` // HH:MM
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.All())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")

	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "date and service_id are required")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), dateStr, serviceID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			httperr.BadRequest(c, httperr.CodeServiceNotFound, "unknown service")
			return
		}

		var fe schedule.FormatError
		if errors.As(err, &fe) {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}

		httperr.Internal(c, "availability_failed", "failed to compute available slots")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid booking payload")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":            b,
		"needs_verification": !b.IsVerified,
	})
}

func mapCreateBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		// stale slot list: the customer must pick a new time
		httperr.Conflict(c, httperr.CodeSlotConflict, "the selected time is no longer available")
	case httperr.IsBusiness(err, httperr.CodeDateBlocked):
		httperr.Conflict(c, httperr.CodeDateBlocked, "this date is not open for bookings")
	case httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours):
		httperr.BadRequest(c, httperr.CodeOutsideWorkingHours, "the selected time is outside working hours")
	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "unknown service")
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.BadRequest(c, "invalid_phone", "please provide a valid Israeli mobile number")
	default:
		var fe schedule.FormatError
		if errors.As(err, &fe) {
			httperr.BadRequest(c, "invalid_date_or_time", "invalid date or time format")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "failed to create the booking")
	}
}
