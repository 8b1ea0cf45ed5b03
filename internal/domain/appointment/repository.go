package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	// -------- Entidades referenciadas --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarberService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.BarberService, error)

	// -------- Janelas de disponibilidade --------
	ListWindows(
		ctx context.Context,
		barberID uint,
	) ([]models.AvailabilityWindow, error)

	// -------- Appointment (create / conflict) --------

	// CreateScheduled persiste agendamento + itens em UMA transação,
	// rechecando conflito com lock pessimista. Tudo ou nada.
	CreateScheduled(
		ctx context.Context,
		ap *models.Appointment,
		items []models.AppointmentService,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveRescheduled grava novos horários rechecando conflito
	// (excluindo o próprio agendamento) na mesma transação.
	SaveRescheduled(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reconstrução do índice / listagens --------

	// ListScheduled retorna todos os agendamentos não terminais
	// ordenados por início, para reconstruir o índice no startup.
	ListScheduled(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
