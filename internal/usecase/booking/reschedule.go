package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type RescheduleInput struct {
	AppointmentID uint
	Start         time.Time
	End           time.Time
}

type Reschedule struct {
	repo  domain.Repository
	index *availability.Index
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	index *availability.Index,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		index: index,
		locks: locks,
		audit: auditDispatcher,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	if err := domain.ValidateInterval(in.Start, in.End); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	release, err := uc.locks.Acquire(ctx, lock.BarberKey(ap.BarberID))
	if err != nil {
		return nil, err
	}
	defer release()

	ap, err = uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	windows, err := uc.repo.ListWindows(ctx, ap.BarberID)
	if err != nil {
		return nil, err
	}
	if !domain.FitsInWindows(windows, in.Start, in.End) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideAvailability)
	}

	// conflito ignora o próprio agendamento sendo remarcado
	if uc.index.HasConflict(ap.BarberID, in.Start, in.End, ap.ID) {
		return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	ap.StartTime = in.Start
	ap.EndTime = in.End

	if err := uc.repo.SaveRescheduled(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.index.Insert(ap.BarberID, ap.ID, in.Start, in.End); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   audit.ActionRescheduled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
