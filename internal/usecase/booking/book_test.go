package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type fixture struct {
	repo  *fakeRepo
	index *availability.Index

	book       *Book
	cancel     *Cancel
	complete   *Complete
	noShow     *MarkNoShow
	reschedule *Reschedule
	slots      *GetAvailability
}

func newFixture() *fixture {
	repo := newFakeRepo()
	index := availability.NewIndex()
	locks := lock.NewKeyedLocker(time.Second)
	dispatcher := audit.NewDispatcher(audit.New(nil), zap.NewNop())

	return &fixture{
		repo:       repo,
		index:      index,
		book:       NewBook(repo, index, locks, dispatcher),
		cancel:     NewCancel(repo, index, locks, dispatcher),
		complete:   NewComplete(repo, index, locks, dispatcher),
		noShow:     NewMarkNoShow(repo, index, locks, dispatcher),
		reschedule: NewReschedule(repo, index, locks, dispatcher),
		slots:      NewGetAvailability(repo, index),
	}
}

// seedBasics cria barbeiro 1 (ativo), cliente 1, os serviços 1 e 2 no
// catálogo e o serviço 1 na tabela do barbeiro (R$50, 40min). O serviço
// 2 existe mas este barbeiro não oferece. Sem janelas — qualquer
// horário vale.
func (f *fixture) seedBasics() {
	f.repo.barbers[1] = &models.Barber{ID: 1, Name: "Rafael", Role: models.RoleSenior, Active: true}
	f.repo.clients[1] = &models.Client{ID: 1, Name: "João"}
	f.repo.services[1] = &models.Service{ID: 1, Code: "corte", Name: "Corte"}
	f.repo.services[2] = &models.Service{ID: 2, Code: "barba", Name: "Barba"}
	f.repo.offers[[2]uint{1, 1}] = &models.BarberService{
		BarberID: 1, ServiceID: 1, Price: 50, DurationMin: 40,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 10, hour, min, 0, 0, time.UTC)
}

func (f *fixture) mustBook(t *testing.T, start, end time.Time) *models.Appointment {
	t.Helper()
	ap, err := f.book.Execute(context.Background(), BookInput{
		BarberID:   1,
		ClientID:   1,
		ServiceIDs: []uint{1},
		Start:      start,
		End:        end,
	})
	require.NoError(t, err)
	return ap
}

func TestBookSucceeds(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.NotEmpty(t, ap.Code)
	assert.Equal(t, 50.0, ap.TotalAmount)
	require.Len(t, ap.Services, 1)
	assert.Equal(t, 40, ap.Services[0].DurationMin)

	// o horário fica ocupado no índice
	assert.True(t, f.index.HasConflict(1, at(10, 0), at(10, 40), 0))
}

func TestBookRejectsOverlap(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	f.mustBook(t, at(10, 0), at(10, 40))

	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(10, 30), End: at(11, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeConflict))

	// nada pode ter sido persistido junto com a recusa
	assert.Equal(t, 1, f.repo.countAppointments())
}

func TestBookBackToBackDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	f.mustBook(t, at(10, 0), at(10, 40))
	ap := f.mustBook(t, at(10, 40), at(11, 10))

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, 2, f.repo.countAppointments())
}

func TestBookRejectsInvalidInterval(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(11, 0), End: at(10, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInterval))

	_, err = f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(10, 0), End: at(10, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInterval))
}

func TestBookUnknownBarber(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 99, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestBookInactiveBarber(t *testing.T) {
	f := newFixture()
	f.seedBasics()
	f.repo.barbers[1].Active = false

	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestBookUnknownClient(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 42, ServiceIDs: []uint{1},
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestBookUnknownServiceIsNotFound(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	// serviço 7 não existe no catálogo
	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{7},
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestBookServiceNotOffered(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	// serviço 2 existe no catálogo mas não na tabela deste barbeiro
	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{2},
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnsupportedService))

	// lista vazia de serviços também é recusada
	_, err = f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1,
		Start: at(10, 0), End: at(10, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnsupportedService))
}

func TestBookOutsideAvailabilityWindow(t *testing.T) {
	f := newFixture()
	f.seedBasics()
	f.repo.windows[1] = []models.AvailabilityWindow{
		{BarberID: 1, StartTime: at(9, 0), EndTime: at(12, 0)},
	}

	// dentro da janela passa
	f.mustBook(t, at(9, 0), at(9, 40))

	// atravessando o fim da janela não passa
	_, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1},
		Start: at(11, 40), End: at(12, 20),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideAvailability))
}

func TestBookSumsMultipleServices(t *testing.T) {
	f := newFixture()
	f.seedBasics()
	f.repo.offers[[2]uint{1, 2}] = &models.BarberService{
		BarberID: 1, ServiceID: 2, Price: 30, DurationMin: 20,
	}

	ap, err := f.book.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: 1, ServiceIDs: []uint{1, 2},
		Start: at(10, 0), End: at(11, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, ap.TotalAmount)
	assert.Len(t, ap.Services, 2)
}

func TestCancelFreesTheSlot(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	cancelled, err := f.cancel.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// mesmo intervalo pode ser reservado de novo
	again := f.mustBook(t, at(10, 0), at(10, 40))
	assert.NotEqual(t, ap.ID, again.ID)
}

func TestCancelTwiceIsInvalidState(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	_, err := f.cancel.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	_, err = f.cancel.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCompleteIsTerminal(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	done, err := f.complete.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	require.NotNil(t, done.CompletedAt)

	_, err = f.cancel.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	// concluído sai do índice de conflitos
	f.mustBook(t, at(10, 0), at(10, 40))
}

func TestMarkNoShow(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	got, err := f.noShow.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), got.Status)

	_, err = f.complete.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCancelUnknownAppointment(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.cancel.Execute(context.Background(), 123)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestRescheduleMovesTheAppointment(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	moved, err := f.reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Start:         at(14, 0),
		End:           at(14, 40),
	})
	require.NoError(t, err)
	assert.Equal(t, at(14, 0), moved.StartTime)

	// horário antigo liberado, novo ocupado
	assert.False(t, f.index.HasConflict(1, at(10, 0), at(10, 40), 0))
	assert.True(t, f.index.HasConflict(1, at(14, 0), at(14, 40), 0))
}

func TestRescheduleOntoItselfIsAllowed(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))

	// sobrepõe o intervalo atual do próprio agendamento
	_, err := f.reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Start:         at(10, 20),
		End:           at(11, 0),
	})
	assert.NoError(t, err)
}

func TestRescheduleOntoAnotherConflicts(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	first := f.mustBook(t, at(10, 0), at(10, 40))
	f.mustBook(t, at(11, 0), at(11, 40))

	_, err := f.reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: first.ID,
		Start:         at(11, 20),
		End:           at(12, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeConflict))
}

func TestRescheduleCancelledIsInvalidState(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	ap := f.mustBook(t, at(10, 0), at(10, 40))
	_, err := f.cancel.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	_, err = f.reschedule.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Start:         at(14, 0),
		End:           at(14, 40),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestGetAvailabilitySkipsBookedSlots(t *testing.T) {
	f := newFixture()
	f.seedBasics()
	f.repo.windows[1] = []models.AvailabilityWindow{
		{BarberID: 1, StartTime: at(9, 0), EndTime: at(12, 0)},
	}

	f.mustBook(t, at(10, 0), at(10, 40))

	slots, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      at(0, 0),
	})
	require.NoError(t, err)

	// passos de 40min a partir das 9h: 09:00 livre, 09:40 e 10:20
	// esbarram na reserva, 11:00 livre, 11:40 não cabe na janela
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "11:00", slots[1].Start)
}

func TestGetAvailabilityUnknownServiceIsNotFound(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 9,
		Date:      at(0, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestGetAvailabilityServiceNotOfferedIsUnsupported(t *testing.T) {
	f := newFixture()
	f.seedBasics()

	_, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 2,
		Date:      at(0, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnsupportedService))
}
