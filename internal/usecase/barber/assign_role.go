package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// USE CASE — troca de cargo
// ======================================================

type AssignRole struct {
	repo  domain.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewAssignRole(
	repo domain.Repository,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *AssignRole {
	return &AssignRole{
		repo:  repo,
		locks: locks,
		audit: auditDispatcher,
	}
}

// Execute troca o cargo de um barbeiro. Promover a chefe com outro
// chefe ativo no quadro falha com role_conflict — rebaixar o atual é
// decisão do caller, nunca automática. Toda mutação de cargo passa
// pelo mesmo lock: duas promoções simultâneas é exatamente a corrida
// que não pode existir.
func (uc *AssignRole) Execute(
	ctx context.Context,
	barberID uint,
	role string,
) (*models.Barber, error) {

	if !domain.ValidRole(role) {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	release, err := uc.locks.Acquire(ctx, lock.RoleKey)
	if err != nil {
		return nil, err
	}
	defer release()

	b, err := uc.repo.GetByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleChief {
		chief, err := uc.repo.FindActiveChief(ctx)
		if err != nil {
			return nil, err
		}
		if chief != nil && chief.ID != b.ID {
			return nil, httperr.ErrBusiness(httperr.CodeRoleConflict)
		}
	}

	b.Role = role
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &b.ID,
		Action:   audit.ActionRoleAssigned,
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: map[string]any{"role": role},
	})

	return b, nil
}
