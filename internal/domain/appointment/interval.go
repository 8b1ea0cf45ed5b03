package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ===============================
// Intervalos [start, end)
// ===============================

// Overlaps testa sobreposição de intervalos semiabertos.
// Encostado (a termina exatamente quando b começa) NÃO conflita.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateInterval: fim precisa ser estritamente depois do início.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return httperr.ErrBusiness(httperr.CodeInvalidInterval)
	}
	return nil
}

// FitsInWindows verifica se [start, end) cabe inteiro em ALGUMA janela.
// Sem janela cadastrada para o barbeiro, tudo é permitido (a agenda
// aberta é o default do material original).
func FitsInWindows(windows []models.AvailabilityWindow, start, end time.Time) bool {
	if len(windows) == 0 {
		return true
	}

	for _, w := range windows {
		if !start.Before(w.StartTime) && !end.After(w.EndTime) {
			return true
		}
	}
	return false
}
