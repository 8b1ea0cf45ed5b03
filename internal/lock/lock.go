package lock

import (
	"context"
	"strconv"
)

// Locker serializa operações por chave lógica (agenda de um barbeiro,
// cargo de chefe). Espera limitada: estourou, devolve lock_timeout e
// quem decide repetir é o caller.
type Locker interface {
	// Acquire bloqueia até obter a chave ou até o limite de espera.
	// Devolve a função de liberação.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Chaves lógicas usadas pelo serviço.
const (
	// RoleKey serializa TODA mutação de cargo de chefe (há no máximo
	// um chefe no sistema inteiro, então o lock é único).
	RoleKey = "role:chief"
)

// BarberKey é a chave de agenda de um barbeiro.
func BarberKey(barberID uint) string {
	return "barber:" + strconv.FormatUint(uint64(barberID), 10)
}
