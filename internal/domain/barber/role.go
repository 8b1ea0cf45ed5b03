package barber

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const MinAge = 21

// ValidRole aceita só os papéis conhecidos.
func ValidRole(role string) bool {
	switch role {
	case models.RoleChief, models.RoleSenior, models.RoleJunior:
		return true
	}
	return false
}

// Age calcula idade em anos completos, com correção de "já fez
// aniversário este ano". Nascido em 29/02 faz aniversário em 01/03
// nos anos não bissextos (normalização do AddDate).
func Age(birthDate, asOf time.Time) int {
	years := asOf.Year() - birthDate.Year()
	if years < 0 {
		return years
	}

	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	return years
}

// ValidateAge aplica a regra de idade mínima na data de referência.
func ValidateAge(birthDate, asOf time.Time) error {
	if Age(birthDate, asOf) < MinAge {
		return httperr.ErrBusiness(httperr.CodeAgeRestriction)
	}
	return nil
}
