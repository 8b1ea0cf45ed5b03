package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.Barber, error)
	GetByEmail(ctx context.Context, email string) (*models.Barber, error)
	List(ctx context.Context) ([]models.Barber, error)

	Create(ctx context.Context, b *models.Barber) error
	Update(ctx context.Context, b *models.Barber) error
	Delete(ctx context.Context, id uint) error

	// FindActiveChief retorna o chefe ativo atual, ou nil se não houver.
	// Sempre consultado no store — nunca cacheado (evita chefe "fantasma").
	FindActiveChief(ctx context.Context) (*models.Barber, error)
}
