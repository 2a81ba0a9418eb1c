package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/httpresp"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedDatesHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewBlockedDatesHandler(db *gorm.DB) *BlockedDatesHandler {
	return &BlockedDatesHandler{
		db:    db,
		audit: audit.New(db),
	}
}

type BlockDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// ======================================================
// LIST
// ======================================================

func (h *BlockedDatesHandler) List(c *gin.Context) {
	var dates []models.BlockedDate
	h.db.Order("date ASC").Find(&dates)

	httpresp.List(c, dates)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockedDatesHandler) Create(c *gin.Context) {
	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date is required")
		return
	}

	dateStr := strings.TrimSpace(req.Date)
	if _, err := timezone.ParseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	var count int64
	h.db.Model(&models.BlockedDate{}).Where("date = ?", dateStr).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "date_already_blocked", "this date is already blocked")
		return
	}

	blocked := models.BlockedDate{Date: dateStr}
	if err := h.db.Create(&blocked).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "date_already_blocked", "this date is already blocked")
			return
		}
		httperr.Internal(c, "failed_to_block_date", "failed to block the date")
		return
	}

	h.audit.Log(
		audit.EventDateBlocked,
		fmt.Sprintf("תאריך נחסם: %s", dateStr),
	)

	httpresp.Created(c, blocked)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockedDatesHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var blocked models.BlockedDate
	if err := h.db.First(&blocked, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "blocked_date_not_found", "blocked date not found")
		return
	}

	if err := h.db.Delete(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_unblock_date", "failed to unblock the date")
		return
	}

	h.audit.Log(
		audit.EventDateUnblocked,
		fmt.Sprintf("חסימת תאריך הוסרה: %s", blocked.Date),
	)

	httpresp.Deleted(c)
}
