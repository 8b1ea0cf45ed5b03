package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucBooking.Book
	cancel       *ucBooking.Cancel
	complete     *ucBooking.Complete
	noShow       *ucBooking.MarkNoShow
	reschedule   *ucBooking.Reschedule
	listByDay    *ucBooking.ListByDay
	availability *ucBooking.GetAvailability
}

func NewAppointmentHandler(
	book *ucBooking.Book,
	cancel *ucBooking.Cancel,
	complete *ucBooking.Complete,
	noShow *ucBooking.MarkNoShow,
	reschedule *ucBooking.Reschedule,
	listByDay *ucBooking.ListByDay,
	availability *ucBooking.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		cancel:       cancel,
		complete:     complete,
		noShow:       noShow,
		reschedule:   reschedule,
		listByDay:    listByDay,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ClientID   uint   `json:"client_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`

	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`

	Notes string `json:"notes"`
}

type RescheduleRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, end, err := parseRange(req.Date, req.Start, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		BarberID:   req.BarberID,
		ClientID:   req.ClientID,
		ServiceIDs: req.ServiceIDs,
		Start:      start,
		End:        end,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, end, err := parseRange(req.Date, req.Start, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		AppointmentID: id,
		Start:         start,
		End:           end,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST / AVAILABILITY
// ======================================================

func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.listByDay.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func parseRange(date, startHM, endHM string) (time.Time, time.Time, error) {
	start, err := parseDateTime(date, startHM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := parseDateTime(date, endHM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
