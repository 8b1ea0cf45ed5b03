package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ListByDay struct {
	repo domain.Repository
}

func NewListByDay(repo domain.Repository) *ListByDay {
	return &ListByDay{repo: repo}
}

func (uc *ListByDay) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForDay(ctx, barberID, start, end)
}
