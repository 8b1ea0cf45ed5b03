package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) List(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, translate(err)
	}
	return barbers, nil
}

func (r *BarberGormRepository) Create(
	ctx context.Context,
	b *models.Barber,
) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BarberGormRepository) Update(
	ctx context.Context,
	b *models.Barber,
) error {
	return translate(r.db.WithContext(ctx).Save(b).Error)
}

func (r *BarberGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Barber{}, id).Error)
}

// FindActiveChief: o chefe atual é sempre um fato derivado do store,
// nunca estado global em memória.
func (r *BarberGormRepository) FindActiveChief(
	ctx context.Context,
) (*models.Barber, error) {

	var b models.Barber
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", models.RoleChief, true).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BarberGormRepository)(nil)
