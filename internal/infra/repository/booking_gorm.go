package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Entidades referenciadas
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *BookingGormRepository) GetBarberService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.BarberService, error) {

	var bs models.BarberService
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND service_id = ?", barberID, serviceID).
		First(&bs).Error; err != nil {
		return nil, translate(err)
	}
	return &bs, nil
}

// --------------------------------------------------
// Janelas de disponibilidade
// --------------------------------------------------

func (r *BookingGormRepository) ListWindows(
	ctx context.Context,
	barberID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, translate(err)
	}
	return windows, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateScheduled grava agendamento e itens numa transação só,
// rechecando conflito com FOR UPDATE. Qualquer falha desfaz tudo.
func (r *BookingGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Appointment,
	items []models.AppointmentService,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := assertNoConflictTx(tx, ap.BarberID, ap.StartTime, ap.EndTime, 0); err != nil {
			return err
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].AppointmentID = ap.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return nil
	})

	return translate(err)
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {
	return assertNoConflictTx(r.db.WithContext(ctx), barberID, start, end, excludeID)
}

func assertNoConflictTx(
	tx *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			barberID, string(domain.StatusScheduled), end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&ap, appointmentID).Error; err != nil {
		return nil, translate(err)
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *BookingGormRepository) SaveRescheduled(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := assertNoConflictTx(tx, ap.BarberID, ap.StartTime, ap.EndTime, ap.ID); err != nil {
			return err
		}

		return tx.Save(ap).Error
	})

	return translate(err)
}

// --------------------------------------------------
// Reconstrução do índice / listagens
// --------------------------------------------------

func (r *BookingGormRepository) ListScheduled(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "end_time").
		Where("status = ?", string(domain.StatusScheduled)).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services.Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
