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

type Cancel struct {
	repo  domain.Repository
	index *availability.Index
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	index *availability.Index,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		index: index,
		locks: locks,
		audit: auditDispatcher,
	}
}

func (uc *Cancel) Execute(
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

	// relê sob o lock: outra requisição pode ter mudado o status
	ap, err = uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelado libera o horário: remarcar o mesmo intervalo passa
	uc.index.Remove(ap.ID)

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   audit.ActionCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
