package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Opcional: review pode ou não referenciar um agendamento
	AppointmentID *uint `json:"appointment_id"`

	Rating   int    `json:"rating"`
	Feedback string `gorm:"size:500" json:"feedback"`

	CreatedAt time.Time `json:"created_at"`
}
