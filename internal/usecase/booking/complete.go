package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type Complete struct {
	repo  domain.Repository
	index *availability.Index
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewComplete(
	repo domain.Repository,
	index *availability.Index,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Complete {
	return &Complete{
		repo:  repo,
		index: index,
		locks: locks,
		audit: auditDispatcher,
	}
}

func (uc *Complete) Execute(
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

	now := timezone.Now()
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.index.Remove(ap.ID)

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   audit.ActionCompleted,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
