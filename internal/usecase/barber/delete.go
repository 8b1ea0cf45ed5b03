package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Delete struct {
	repo  domain.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		locks: locks,
		audit: auditDispatcher,
	}
}

// Execute remove um barbeiro. O chefe atual é protegido: transfira o
// cargo antes — a remoção nunca rebaixa ninguém por baixo dos panos
// (o "instead of delete" do material original virou pré-condição
// explícita aqui).
func (uc *Delete) Execute(
	ctx context.Context,
	barberID uint,
) error {

	release, err := uc.locks.Acquire(ctx, lock.RoleKey)
	if err != nil {
		return err
	}
	defer release()

	b, err := uc.repo.GetByID(ctx, barberID)
	if err != nil {
		return err
	}

	if b.Role == models.RoleChief {
		return httperr.ErrBusiness(httperr.CodeProtectedEntity)
	}

	if err := uc.repo.Delete(ctx, barberID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   audit.ActionBarberDeleted,
		Entity:   "barber",
		EntityID: &barberID,
	})

	return nil
}
