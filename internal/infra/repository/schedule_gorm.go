package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/models"
	"github.com/courtspace/court-scheduler/internal/timeslot"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Units (facility directory)
// --------------------------------------------------

func (r *ScheduleGormRepository) UnitExists(
	ctx context.Context,
	unitID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("id = ?", unitID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

// CreateSlot inserts a slot after checking for overlapping windows. The
// unit row is locked for the duration of the transaction so that two
// concurrent proposals for the same unit+day serialize instead of both
// passing the check.
func (r *ScheduleGormRepository) CreateSlot(
	ctx context.Context,
	s *models.Slot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUnit(tx, s.UnitID); err != nil {
			return err
		}

		overlapping, err := findOverlappingSlots(tx, s)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return overlapConflict(s.UnitID, overlapping)
		}

		return tx.Create(s).Error
	})
}

func (r *ScheduleGormRepository) UpdateSlot(
	ctx context.Context,
	s *models.Slot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUnit(tx, s.UnitID); err != nil {
			return err
		}

		overlapping, err := findOverlappingSlots(tx, s)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return overlapConflict(s.UnitID, overlapping)
		}

		return tx.Save(s).Error
	})
}

func (r *ScheduleGormRepository) DeleteSlot(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Slot{}, id).Error
}

func (r *ScheduleGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) FindSlots(
	ctx context.Context,
	f schedule.SlotFilter,
	p schedule.Pagination,
) ([]models.Slot, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Slot{})

	if f.UnitID != nil {
		q = q.Where("unit_id = ?", *f.UnitID)
	}
	if f.DayOfWeek != nil {
		q = q.Where("day_of_week = ?", *f.DayOfWeek)
	}
	if len(f.IDs) > 0 {
		q = q.Where("id IN ?", f.IDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}

	var slots []models.Slot
	if err := q.Order("id ASC").Find(&slots).Error; err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ScheduleGormRepository) CountConfirmedForSlots(
	ctx context.Context,
	date time.Time,
	slotIDs []uint,
) (int64, error) {
	return countConfirmedForSlots(r.db.WithContext(ctx), date, slotIDs)
}

// CreateConfirmed writes the reservation and its slot links in one
// transaction. The referenced slot rows are locked first, so concurrent
// bookings that intersect on any slot serialize and the second one sees
// the first one's rows when the booked check re-runs.
func (r *ScheduleGormRepository) CreateConfirmed(
	ctx context.Context,
	res *models.Reservation,
	slotIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", slotIDs).
			Find(&locked).Error; err != nil {
			return err
		}

		count, err := countConfirmedForSlots(tx, res.ReservationDate, slotIDs)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrAlreadyExists("already_booked",
				"One or more slots are already booked")
		}

		res.Slots = make([]models.ReservationSlot, 0, len(slotIDs))
		for _, id := range slotIDs {
			res.Slots = append(res.Slots, models.ReservationSlot{SlotID: id})
		}

		return tx.Create(res).Error
	})
}

func (r *ScheduleGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Slots").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// UpdateReservation persists the reservation row only; slot links are
// immutable and never rewritten.
func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(res).Error
}

func (r *ScheduleGormRepository) FindReservations(
	ctx context.Context,
	f schedule.ReservationFilter,
	p schedule.Pagination,
) ([]models.Reservation, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Date != nil {
		q = q.Where("reservation_date = ?", *f.Date)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}

	var reservations []models.Reservation
	if err := q.
		Preload("Slots").
		Order("id ASC").
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func lockUnit(tx *gorm.DB, unitID uint) error {
	var unit models.Unit
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("unit_not_found",
				fmt.Sprintf("Unit: %d not found.", unitID))
		}
		return err
	}
	return nil
}

func findOverlappingSlots(tx *gorm.DB, s *models.Slot) ([]models.Slot, error) {
	q := tx.
		Where(
			"unit_id = ? AND day_of_week = ? AND active = ? AND open_minute < ? AND close_minute > ?",
			s.UnitID, s.DayOfWeek, true, s.CloseMinute, s.OpenMinute,
		)
	if s.ID != 0 {
		q = q.Where("id <> ?", s.ID)
	}

	var out []models.Slot
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func overlapConflict(unitID uint, overlapping []models.Slot) error {
	descs := make([]string, 0, len(overlapping))
	for _, o := range overlapping {
		descs = append(descs, fmt.Sprintf("Slot: %d - day: %d - %s - %s",
			o.ID,
			o.DayOfWeek,
			timeslot.MinuteOfDay(o.OpenMinute).Format(),
			timeslot.MinuteOfDay(o.CloseMinute).Format(),
		))
	}
	return httperr.ErrConflict("slot_overlap",
		fmt.Sprintf("Overlapping slot already exists for unit %d: %s",
			unitID, strings.Join(descs, "; ")))
}

func countConfirmedForSlots(tx *gorm.DB, date time.Time, slotIDs []uint) (int64, error) {
	var count int64
	err := tx.
		Model(&models.Reservation{}).
		Joins("JOIN reservation_slots ON reservation_slots.reservation_id = reservations.id").
		Where(
			"reservations.reservation_date = ? AND reservations.status = ? AND reservation_slots.slot_id IN ?",
			date, string(schedule.StatusConfirmed), slotIDs,
		).
		Distinct("reservations.id").
		Count(&count).Error
	return count, err
}

// Compile-time checks
var (
	_ schedule.SlotRepository        = (*ScheduleGormRepository)(nil)
	_ schedule.ReservationRepository = (*ScheduleGormRepository)(nil)
	_ schedule.UnitDirectory         = (*ScheduleGormRepository)(nil)
)
