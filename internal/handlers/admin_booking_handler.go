package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/dto"
	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/httpresp"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewAdminBookingHandler(db *gorm.DB) *AdminBookingHandler {
	return &AdminBookingHandler{
		db:    db,
		audit: audit.New(db),
	}
}

func toListDTO(b models.Booking) dto.BookingListDTO {
	return dto.BookingListDTO{
		ID:            b.ID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
		IsVerified:    b.IsVerified,
		ServiceTitle:  b.ServiceTitle,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
	}
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AdminBookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required")
		return
	}

	if _, err := timezone.ParseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	var bookings []models.Booking
	h.db.
		Where("date = ?", dateStr).
		Order("start_time ASC").
		Find(&bookings)

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toListDTO(b))
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST UPCOMING
// ======================================================

// ListUpcoming returns non-cancelled bookings from today onward. Dates are
// stored as YYYY-MM-DD strings, so string comparison orders correctly.
func (h *AdminBookingHandler) ListUpcoming(c *gin.Context) {
	today := timezone.Today()

	var bookings []models.Booking
	h.db.
		Where("date >= ? AND status <> ?", today, "cancelled").
		Order("date ASC, start_time ASC").
		Find(&bookings)

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toListDTO(b))
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AdminBookingHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "year and month are required")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "invalid year")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "invalid month")
		return
	}

	loc := timezone.Location()
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	var bookings []models.Booking
	h.db.
		Where(
			"date >= ? AND date < ?",
			start.Format(timezone.DateLayout), end.Format(timezone.DateLayout),
		).
		Order("date ASC, start_time ASC").
		Find(&bookings)

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toListDTO(b))
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeBookingNotFound, "booking not found")
		return
	}

	if !domain.Cancel(&b, timezone.Now()) {
		c.JSON(200, gin.H{
			"booking":           b,
			"already_cancelled": true,
		})
		return
	}

	if err := h.db.Save(&b).Error; err != nil {
		httperr.Internal(c, "cancellation_failed", "failed to cancel the booking")
		return
	}

	h.audit.Log(
		audit.EventBookingCancelled,
		fmt.Sprintf("תור בוטל ע\"י מנהלת: %s, %s בתאריך %s בשעה %s",
			b.CustomerName, b.ServiceTitle, b.Date, b.StartTime),
	)

	c.JSON(200, gin.H{
		"booking":           b,
		"already_cancelled": false,
	})
}
