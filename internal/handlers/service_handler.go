package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AttachBarberServiceRequest struct {
	ServiceID   uint    `json:"service_id" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("code ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var count int64
	h.db.Model(&models.Service{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "code_already_exists"})
		return
	}

	service := models.Service{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ======================================================
// TABELA DO BARBEIRO (preço + duração)
// ======================================================

func (h *ServiceHandler) ListForBarber(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var offered []models.BarberService
	if err := h.db.
		Preload("Service").
		Where("barber_id = ?", id).
		Order("service_id ASC").
		Find(&offered).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barber_services"})
		return
	}

	c.JSON(http.StatusOK, offered)
}

func (h *ServiceHandler) AttachToBarber(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AttachBarberServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	// upsert por (barbeiro, serviço): reatachar atualiza preço/duração
	var bs models.BarberService
	err := h.db.
		Where("barber_id = ? AND service_id = ?", id, req.ServiceID).
		First(&bs).Error

	if err == nil {
		bs.Price = req.Price
		bs.DurationMin = req.DurationMin
		if err := h.db.Save(&bs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber_service"})
			return
		}
		c.JSON(http.StatusOK, bs)
		return
	}

	bs = models.BarberService{
		BarberID:    id,
		ServiceID:   req.ServiceID,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.db.Create(&bs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_attach_service"})
		return
	}

	c.JSON(http.StatusCreated, bs)
}
