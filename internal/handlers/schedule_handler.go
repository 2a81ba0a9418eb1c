package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/httpresp"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/schedule"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type SetScheduleRequest struct {
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM, equal to start_time = closed all day
}

// ======================================================
// GET
// ======================================================

// Get returns the effective hours for a date: the stored override when one
// exists, otherwise the weekday defaults.
func (h *ScheduleHandler) Get(c *gin.Context) {
	dateStr := c.Param("date")

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	var ds models.DailySchedule
	err = h.db.Where("date = ?", dateStr).First(&ds).Error

	var override *schedule.Override
	hasOverride := err == nil
	if hasOverride {
		override = &schedule.Override{StartTime: ds.StartTime, EndTime: ds.EndTime}
	}

	hours, open, err := schedule.ResolveWorkingHours(date, override)
	if err != nil {
		httperr.Internal(c, "schedule_resolve_failed", "failed to resolve working hours")
		return
	}

	resp := gin.H{
		"date":         dateStr,
		"has_override": hasOverride,
		"open":         open,
	}
	if open {
		resp["start_time"] = schedule.ToHHMM(hours.Open)
		resp["end_time"] = schedule.ToHHMM(hours.Close)
	}

	httpresp.OK(c, resp)
}

// ======================================================
// SET
// ======================================================

func (h *ScheduleHandler) Set(c *gin.Context) {
	dateStr := c.Param("date")

	if _, err := timezone.ParseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "start_time and end_time are required")
		return
	}

	start, err := schedule.ToMinutes(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "start_time must be HH:MM")
		return
	}

	end, err := schedule.ToMinutes(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "end_time must be HH:MM")
		return
	}

	if end < start {
		httperr.BadRequest(c, "invalid_range", "end_time must not be before start_time")
		return
	}

	var ds models.DailySchedule
	err = h.db.Where("date = ?", dateStr).First(&ds).Error

	switch {
	case err == nil:
		ds.StartTime = req.StartTime
		ds.EndTime = req.EndTime
		err = h.db.Save(&ds).Error
	case err == gorm.ErrRecordNotFound:
		ds = models.DailySchedule{
			Date:      dateStr,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		err = h.db.Create(&ds).Error
	}

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "schedule_already_set", "an override for this date already exists")
			return
		}
		httperr.Internal(c, "failed_to_set_schedule", "failed to save the schedule override")
		return
	}

	httpresp.OK(c, ds)
}

// ======================================================
// DELETE
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	dateStr := c.Param("date")

	res := h.db.Where("date = ?", dateStr).Delete(&models.DailySchedule{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "failed to remove the schedule override")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "schedule_not_found", "no override exists for this date")
		return
	}

	httpresp.Deleted(c)
}
