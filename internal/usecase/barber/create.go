package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type Create struct {
	repo  domain.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *Create {
	return &Create{
		repo:  repo,
		locks: locks,
		audit: auditDispatcher,
	}
}

// Execute cadastra um barbeiro. Idade mínima é recalculada na hora
// (nunca armazenada); entrar já como chefe passa pela mesma checagem
// de chefe único das trocas de cargo.
func (uc *Create) Execute(
	ctx context.Context,
	b *models.Barber,
) error {

	if b.Role == "" {
		b.Role = models.RoleJunior
	}
	if !domain.ValidRole(b.Role) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.ValidateAge(b.BirthDate, timezone.Now()); err != nil {
		return err
	}

	release, err := uc.locks.Acquire(ctx, lock.RoleKey)
	if err != nil {
		return err
	}
	defer release()

	if b.Role == models.RoleChief {
		chief, err := uc.repo.FindActiveChief(ctx)
		if err != nil {
			return err
		}
		if chief != nil {
			return httperr.ErrBusiness(httperr.CodeRoleConflict)
		}
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &b.ID,
		Action:   audit.ActionBarberCreated,
		Entity:   "barber",
		EntityID: &b.ID,
	})

	return nil
}
