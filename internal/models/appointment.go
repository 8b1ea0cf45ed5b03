package models

import "time"

type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	BarberID uint   `gorm:"index:idx_barber_start" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StartTime time.Time `gorm:"index:idx_barber_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	TotalAmount float64 `json:"total_amount"`

	Services []AppointmentService `json:"services"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item do agendamento com snapshot de preço e duração no momento da
// reserva (mudança de tabela de preços não afeta agendamento já feito).
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
}
