package availability

import (
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// Índice de ocupação por barbeiro
// ======================================================
//
// Mantém, em memória, os intervalos ocupados de cada barbeiro
// (agendamentos não terminais), ordenados por início. A fonte de
// verdade continua sendo o banco; o índice é reconstruído no startup
// e atualizado pelo engine a cada commit.

type entry struct {
	ID    uint
	Start time.Time
	End   time.Time
}

type Index struct {
	mu       sync.RWMutex
	byBarber map[uint][]entry
	byID     map[uint]uint // appointmentID -> barberID
}

func NewIndex() *Index {
	return &Index{
		byBarber: make(map[uint][]entry),
		byID:     make(map[uint]uint),
	}
}

// Rebuild substitui o conteúdo do índice pelos agendamentos
// informados (todos com status não terminal, ordenados ou não).
func (ix *Index) Rebuild(aps []models.Appointment) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.byBarber = make(map[uint][]entry)
	ix.byID = make(map[uint]uint)

	for _, ap := range aps {
		ix.byBarber[ap.BarberID] = append(ix.byBarber[ap.BarberID], entry{
			ID:    ap.ID,
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
		ix.byID[ap.ID] = ap.BarberID
	}

	for barberID := range ix.byBarber {
		sortEntries(ix.byBarber[barberID])
	}
}

// HasConflict responde se [start, end) sobrepõe algum intervalo do
// barbeiro, ignorando excludeID (0 = não ignorar ninguém). Intervalos
// encostados não conflitam (semântica semiaberta).
func (ix *Index) HasConflict(barberID uint, start, end time.Time, excludeID uint) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.conflictLocked(barberID, start, end, excludeID)
}

// Insert adiciona o intervalo de um agendamento; falha com
// time_conflict se já houver sobreposição (excluindo o próprio ID,
// para remarcação).
func (ix *Index) Insert(barberID, appointmentID uint, start, end time.Time) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.conflictLocked(barberID, start, end, appointmentID) {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	// remarcação: tira a versão anterior antes de inserir a nova
	ix.removeLocked(appointmentID)

	entries := append(ix.byBarber[barberID], entry{
		ID:    appointmentID,
		Start: start,
		End:   end,
	})
	sortEntries(entries)

	ix.byBarber[barberID] = entries
	ix.byID[appointmentID] = barberID
	return nil
}

// Remove tira o intervalo de um agendamento. Idempotente.
func (ix *Index) Remove(appointmentID uint) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.removeLocked(appointmentID)
}

// ---------------------------------------------------

func (ix *Index) conflictLocked(barberID uint, start, end time.Time, excludeID uint) bool {
	for _, e := range ix.byBarber[barberID] {
		if !e.Start.Before(end) {
			break // ordenado por início: daqui em diante nada sobrepõe
		}
		if e.ID == excludeID {
			continue
		}
		if domain.Overlaps(e.Start, e.End, start, end) {
			return true
		}
	}
	return false
}

func (ix *Index) removeLocked(appointmentID uint) {
	barberID, ok := ix.byID[appointmentID]
	if !ok {
		return
	}

	entries := ix.byBarber[barberID]
	for i, e := range entries {
		if e.ID == appointmentID {
			ix.byBarber[barberID] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	delete(ix.byID, appointmentID)
}

func sortEntries(entries []entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
}
