package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Repositório em memória com a mesma semântica de erro do gorm real.
type fakeRepo struct {
	mu sync.Mutex

	barbers      map[uint]*models.Barber
	clients      map[uint]*models.Client
	services     map[uint]*models.Service
	offers       map[[2]uint]*models.BarberService
	windows      map[uint][]models.AvailabilityWindow
	appointments map[uint]*models.Appointment
	items        map[uint][]models.AppointmentService

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[uint]*models.Barber),
		clients:      make(map[uint]*models.Client),
		services:     make(map[uint]*models.Service),
		offers:       make(map[[2]uint]*models.BarberService),
		windows:      make(map[uint][]models.AvailabilityWindow),
		appointments: make(map[uint]*models.Appointment),
		items:        make(map[uint][]models.AppointmentService),
	}
}

func (r *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) GetBarberService(_ context.Context, barberID, serviceID uint) (*models.BarberService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bs, ok := r.offers[[2]uint{barberID, serviceID}]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *bs
	return &copied, nil
}

func (r *fakeRepo) ListWindows(_ context.Context, barberID uint) ([]models.AvailabilityWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.AvailabilityWindow(nil), r.windows[barberID]...), nil
}

func (r *fakeRepo) CreateScheduled(_ context.Context, ap *models.Appointment, items []models.AppointmentService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictLocked(ap.BarberID, ap.StartTime, ap.EndTime, 0) {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	r.nextID++
	ap.ID = r.nextID

	copied := *ap
	r.appointments[ap.ID] = &copied
	r.items[ap.ID] = append([]models.AppointmentService(nil), items...)
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(_ context.Context, barberID uint, start, end time.Time, excludeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictLocked(barberID, start, end, excludeID) {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *ap
	return &copied, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) SaveRescheduled(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictLocked(ap.BarberID, ap.StartTime, ap.EndTime, ap.ID) {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) ListScheduled(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusScheduled) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) conflictLocked(barberID uint, start, end time.Time, excludeID uint) bool {
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.ID == excludeID {
			continue
		}
		if ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) countAppointments() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

var _ domain.Repository = (*fakeRepo)(nil)
