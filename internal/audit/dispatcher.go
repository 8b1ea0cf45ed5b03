package audit

import "go.uber.org/zap"

// Ações auditadas pelo serviço.
const (
	ActionBooked      = "appointment_booked"
	ActionCancelled   = "appointment_cancelled"
	ActionCompleted   = "appointment_completed"
	ActionNoShow      = "appointment_no_show"
	ActionRescheduled = "appointment_rescheduled"
	ActionConflict    = "appointment_conflict"

	ActionRoleAssigned  = "role_assigned"
	ActionBarberCreated = "barber_created"
	ActionBarberDeleted = "barber_deleted"
)

type Event struct {
	BarberID *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarberID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
