package httperr

import "errors"

// ===============================
// Códigos de erro de negócio
// ===============================

const (
	CodeInvalidInterval     = "invalid_interval"
	CodeNotFound            = "not_found"
	CodeTimeConflict        = "time_conflict"
	CodeUnsupportedService  = "unsupported_service"
	CodeInvalidState        = "invalid_state"
	CodeRoleConflict        = "role_conflict"
	CodeAgeRestriction      = "age_restriction"
	CodeProtectedEntity     = "protected_entity"
	CodeLockTimeout         = "lock_timeout"
	CodeOutsideAvailability = "outside_availability"
	CodeInvalidRating       = "invalid_rating"
	CodeAlreadyExists       = "already_exists"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio de um erro, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
