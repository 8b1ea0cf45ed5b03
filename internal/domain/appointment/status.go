package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// IsTerminal: completed, cancelled e no_show são finais, sem volta.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode virar no_show
func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanReschedule: só agendamento ainda ativo pode ser remarcado
func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
