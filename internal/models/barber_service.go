package models

import "time"

// Preço e duração de um serviço para um barbeiro específico.
// Único por (barbeiro, serviço).
type BarberService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_barber_service" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"uniqueIndex:idx_barber_service" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
