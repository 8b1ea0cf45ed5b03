package models

import "time"

// Janela de disponibilidade: faixa em que o barbeiro PODE ser agendado.
// Janelas podem se sobrepor entre si; quem impede sobreposição de
// agendamentos é o engine, não a janela.
type AvailabilityWindow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
