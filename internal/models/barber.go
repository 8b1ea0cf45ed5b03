package models

import "time"

// Papéis possíveis de um barbeiro. No máximo UM chief ativo por vez —
// a regra é aplicada pelo usecase de roles, não pelo banco.
const (
	RoleChief  = "chief"
	RoleSenior = "senior"
	RoleJunior = "junior"
)

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role   string `gorm:"size:20;default:'junior'" json:"role"`
	Active bool   `gorm:"default:true" json:"active"`

	BirthDate time.Time `json:"birth_date"`
	HireDate  time.Time `json:"hire_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
