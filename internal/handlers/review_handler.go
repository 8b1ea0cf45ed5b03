package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	BarberID      uint   `json:"barber_id" binding:"required"`
	ClientID      uint   `json:"client_id" binding:"required"`
	AppointmentID *uint  `json:"appointment_id"`
	Rating        int    `json:"rating" binding:"required"`
	Feedback      string `json:"feedback"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// o CHECK (rating between 1 and 5) do material original vive aqui
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, httperr.CodeInvalidRating, "Nota deve estar entre 1 e 5.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, req.BarberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
		return
	}

	if req.AppointmentID != nil {
		var ap models.Appointment
		if err := h.db.First(&ap, *req.AppointmentID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
			return
		}
	}

	review := models.Review{
		BarberID:      req.BarberID,
		ClientID:      req.ClientID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Feedback:      req.Feedback,
	}

	if err := h.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListByBarber(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := h.db.
		Preload("Client").
		Where("barber_id = ?", id).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
