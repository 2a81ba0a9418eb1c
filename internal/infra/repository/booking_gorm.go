package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Day reads
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status <> ?", date, "cancelled").
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBlockedSlotsForDate(
	ctx context.Context,
	date string,
) ([]models.BlockedTimeSlot, error) {

	var slots []models.BlockedTimeSlot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) IsDateBlocked(
	ctx context.Context,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) GetScheduleOverride(
	ctx context.Context,
	date string,
) (*models.DailySchedule, error) {

	var schedule models.DailySchedule
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&schedule).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// --------------------------------------------------
// Booking writes
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingByToken(
	ctx context.Context,
	token string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("cancellation_token = ?", token).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) FindLatestUnverified(
	ctx context.Context,
	phone string,
	code string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("customer_phone = ? AND verification_code = ? AND is_verified = false", phone, code).
		Order("created_at DESC").
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
