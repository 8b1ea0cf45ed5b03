package barber

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// INPUT — campos opcionais, só o que veio muda
// ======================================================

type UpdateInput struct {
	Name      *string
	Phone     *string
	Active    *bool
	BirthDate *time.Time
	HireDate  *time.Time
}

type Update struct {
	repo  domain.Repository
	locks lock.Locker
}

func NewUpdate(repo domain.Repository, locks lock.Locker) *Update {
	return &Update{repo: repo, locks: locks}
}

// Execute atualiza dados cadastrais. Mexeu em data de nascimento,
// a regra de idade roda de novo. Cargo NÃO passa por aqui — troca de
// cargo é só via AssignRole, para não furar o lock do chefe único.
func (uc *Update) Execute(
	ctx context.Context,
	barberID uint,
	in UpdateInput,
) (*models.Barber, error) {

	b, err := uc.repo.GetByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	// Reativação passa pelo lock de cargos: religar um chefe que foi
	// desativado DEPOIS de outra promoção criaria dois chefes ativos.
	if in.Active != nil && *in.Active && !b.Active {
		release, err := uc.locks.Acquire(ctx, lock.RoleKey)
		if err != nil {
			return nil, err
		}
		defer release()

		// relê sob o lock: cargo pode ter mudado no meio do caminho
		b, err = uc.repo.GetByID(ctx, barberID)
		if err != nil {
			return nil, err
		}

		if b.Role == models.RoleChief {
			chief, err := uc.repo.FindActiveChief(ctx)
			if err != nil {
				return nil, err
			}
			if chief != nil && chief.ID != b.ID {
				return nil, httperr.ErrBusiness(httperr.CodeRoleConflict)
			}
		}
	}

	if in.BirthDate != nil {
		if err := domain.ValidateAge(*in.BirthDate, timezone.Now()); err != nil {
			return nil, err
		}
		b.BirthDate = *in.BirthDate
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Active != nil {
		b.Active = *in.Active
	}
	if in.HireDate != nil {
		b.HireDate = *in.HireDate
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
