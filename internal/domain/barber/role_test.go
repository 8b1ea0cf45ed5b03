package barber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeFullYearsWithBirthdayCorrection(t *testing.T) {
	birth := date(2005, time.March, 5)

	// véspera do aniversário: ainda 19
	assert.Equal(t, 19, Age(birth, date(2025, time.March, 4)))

	// dia do aniversário: 20
	assert.Equal(t, 20, Age(birth, date(2025, time.March, 5)))

	assert.Equal(t, 21, Age(birth, date(2026, time.March, 5)))
}

func TestAgeLeapDayBirth(t *testing.T) {
	birth := date(2004, time.February, 29)

	// em ano não bissexto o aniversário normaliza para 01/03
	assert.Equal(t, 20, Age(birth, date(2025, time.February, 28)))
	assert.Equal(t, 21, Age(birth, date(2025, time.March, 1)))
}

func TestValidateAge(t *testing.T) {
	// nascido em 2005: reprovado nas duas datas do cenário
	birth := date(2005, time.March, 5)

	err := ValidateAge(birth, date(2025, time.March, 4))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAgeRestriction))

	err = ValidateAge(birth, date(2025, time.March, 5))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAgeRestriction))

	// 2004 ou antes passa aos 21
	assert.NoError(t, ValidateAge(date(2004, time.March, 5), date(2025, time.March, 5)))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("chief"))
	assert.True(t, ValidRole("senior"))
	assert.True(t, ValidRole("junior"))
	assert.False(t, ValidRole("owner"))
	assert.False(t, ValidRole(""))
}
