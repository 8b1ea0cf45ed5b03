package timezone

import (
	"sync"
	"time"
)

// Fuso padrão da barbearia. Todas as datas e horas da API são
// interpretadas nele.
const defaultTZ = "America/Sao_Paulo"

var (
	once sync.Once
	loc  *time.Location
)

func Location() *time.Location {
	once.Do(func() {
		l, err := time.LoadLocation(defaultTZ)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
