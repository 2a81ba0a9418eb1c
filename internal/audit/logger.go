package audit

import (
	"gorm.io/gorm"

	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

// Logger writes activity_log rows. The engine never reads them back.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(eventType, description string) error {
	entry := models.ActivityLog{
		Type:        eventType,
		Description: description,
	}
	return l.db.Create(&entry).Error
}
