package handlers

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Datas e horas da API chegam sempre no fuso padrão da barbearia.

func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, timezone.Location())
}

func parseDateTime(date, hm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, timezone.Location())
}
