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

type BlockedSlotsHandler struct {
	db *gorm.DB
}

func NewBlockedSlotsHandler(db *gorm.DB) *BlockedSlotsHandler {
	return &BlockedSlotsHandler{db: db}
}

type BlockSlotRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
}

// ======================================================
// LIST
// ======================================================

func (h *BlockedSlotsHandler) List(c *gin.Context) {
	q := h.db.Order("date ASC, start_time ASC")

	if dateStr := c.Query("date"); dateStr != "" {
		q = q.Where("date = ?", dateStr)
	}

	var slots []models.BlockedTimeSlot
	q.Find(&slots)

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockedSlotsHandler) Create(c *gin.Context) {
	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date, start_time and end_time are required")
		return
	}

	if _, err := timezone.ParseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
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

	if end <= start {
		httperr.BadRequest(c, "invalid_range", "end_time must be after start_time")
		return
	}

	slot := models.BlockedTimeSlot{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_block_slot", "failed to block the time slot")
		return
	}

	httpresp.Created(c, slot)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockedSlotsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var slot models.BlockedTimeSlot
	if err := h.db.First(&slot, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "blocked_slot_not_found", "blocked time slot not found")
		return
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_unblock_slot", "failed to remove the blocked slot")
		return
	}

	httpresp.Deleted(c)
}
