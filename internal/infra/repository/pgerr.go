package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// translate converte erro cru do store em erro de negócio tipado.
// Violação de unicidade vira already_exists, FK quebrada vira
// not_found (a entidade referenciada não existe) — nunca deixamos
// erro de driver vazar para o handler.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return httperr.ErrBusiness(httperr.CodeAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
	}

	return err
}
