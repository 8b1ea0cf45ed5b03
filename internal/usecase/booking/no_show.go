package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	index *availability.Index
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	index *availability.Index,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		index: index,
		locks: locks,
		audit: auditDispatcher,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	release, err := uc.locks.Acquire(ctx, lock.BarberKey(ap.BarberID))
	if err != nil {
		return nil, err
	}
	defer release()

	ap, err = uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.index.Remove(ap.ID)

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   audit.ActionNoShow,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
