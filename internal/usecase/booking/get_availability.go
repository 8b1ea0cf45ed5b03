package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	index *availability.Index
}

func NewGetAvailability(
	repo domain.Repository,
	index *availability.Index,
) *GetAvailability {
	return &GetAvailability{repo: repo, index: index}
}

// Execute gera os slots livres do barbeiro num dia, com a duração do
// serviço pedido: janelas de disponibilidade menos intervalos já
// ocupados (semântica semiaberta — slot encostado em agendamento vale).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	// serviço fora do catálogo → not_found; fora da tabela do barbeiro
	// → unsupported_service (mesma distinção do booking)
	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	bs, err := uc.repo.GetBarberService(ctx, in.BarberID, in.ServiceID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUnsupportedService)
		}
		return nil, err
	}

	windows, err := uc.repo.ListWindows(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	slotDuration := time.Duration(bs.DurationMin) * time.Minute
	if slotDuration <= 0 {
		return []domain.TimeSlot{}, nil
	}

	var slots []domain.TimeSlot

	for _, w := range windows {
		// recorta a janela para dentro do dia pedido
		start := w.StartTime
		if start.Before(dayStart) {
			start = dayStart
		}
		end := w.EndTime
		if end.After(dayEnd) {
			end = dayEnd
		}

		for cur := start; !cur.Add(slotDuration).After(end); cur = cur.Add(slotDuration) {
			slotStart := cur
			slotEnd := cur.Add(slotDuration)

			if uc.index.HasConflict(in.BarberID, slotStart, slotEnd, 0) {
				continue
			}

			slots = append(slots, domain.TimeSlot{
				Start: slotStart.In(loc).Format("15:04"),
				End:   slotEnd.In(loc).Format("15:04"),
			})
		}
	}

	return slots, nil
}
