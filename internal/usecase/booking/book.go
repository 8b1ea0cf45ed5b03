package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID uint
	ClientID uint

	ServiceIDs []uint

	Start time.Time
	End   time.Time

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	index *availability.Index
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	index *availability.Index,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		index: index,
		locks: locks,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Intervalo
	// --------------------------------------------------
	if err := domain.ValidateInterval(in.Start, in.End); err != nil {
		return nil, err
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeUnsupportedService)
	}

	// --------------------------------------------------
	// 2️⃣ Entidades referenciadas
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if _, err := uc.repo.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Lock da agenda do barbeiro (check-then-act é
	// serializado daqui até o commit)
	// --------------------------------------------------
	release, err := uc.locks.Acquire(ctx, lock.BarberKey(in.BarberID))
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 4️⃣ Janelas de disponibilidade
	// --------------------------------------------------
	windows, err := uc.repo.ListWindows(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !domain.FitsInWindows(windows, in.Start, in.End) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideAvailability)
	}

	// --------------------------------------------------
	// 5️⃣ Conflito de horário (índice)
	// --------------------------------------------------
	if uc.index.HasConflict(in.BarberID, in.Start, in.End, 0) {
		uc.audit.Dispatch(audit.Event{
			BarberID: &in.BarberID,
			Action:   audit.ActionConflict,
			Entity:   "appointment",
			Metadata: map[string]any{"start": in.Start, "end": in.End},
		})
		return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	// --------------------------------------------------
	// 6️⃣ Serviços + total (snapshot de preço/duração)
	// --------------------------------------------------
	items, total, err := uc.buildItems(ctx, in.BarberID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Persistência atômica + índice
	// --------------------------------------------------
	ap := &models.Appointment{
		Code:        uuid.NewString(),
		BarberID:    in.BarberID,
		ClientID:    in.ClientID,
		StartTime:   in.Start,
		EndTime:     in.End,
		Status:      string(domain.InitialStatus()),
		TotalAmount: total,
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateScheduled(ctx, ap, items); err != nil {
		return nil, err
	}

	// sob o lock da agenda o índice não pode conflitar aqui
	if err := uc.index.Insert(in.BarberID, ap.ID, in.Start, in.End); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &in.BarberID,
		Action:   audit.ActionBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Services = items
	return ap, nil
}

// buildItems monta os itens do agendamento com o preço atual da tabela
// do barbeiro. Serviço inexistente no catálogo → not_found; serviço
// existente fora da tabela DESTE barbeiro → unsupported_service.
func (uc *Book) buildItems(
	ctx context.Context,
	barberID uint,
	serviceIDs []uint,
) ([]models.AppointmentService, float64, error) {

	items := make([]models.AppointmentService, 0, len(serviceIDs))
	var total float64

	for _, serviceID := range serviceIDs {
		if _, err := uc.repo.GetServiceByID(ctx, serviceID); err != nil {
			return nil, 0, err
		}

		bs, err := uc.repo.GetBarberService(ctx, barberID, serviceID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeNotFound) {
				return nil, 0, httperr.ErrBusiness(httperr.CodeUnsupportedService)
			}
			return nil, 0, err
		}

		items = append(items, models.AppointmentService{
			ServiceID:   serviceID,
			Price:       bs.Price,
			DurationMin: bs.DurationMin,
		})
		total += bs.Price
	}

	return items, total, nil
}
