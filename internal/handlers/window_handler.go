package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type WindowHandler struct {
	db *gorm.DB
}

func NewWindowHandler(db *gorm.DB) *WindowHandler {
	return &WindowHandler{db: db}
}

type WindowConfig struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WindowsUpdateRequest struct {
	Windows []WindowConfig `json:"windows" binding:"required"`
}

func (h *WindowHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("barber_id = ?", id).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_windows"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update substitui todas as janelas do barbeiro. Janelas podem se
// sobrepor entre si — só o fim antes do início é rejeitado.
func (h *WindowHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req WindowsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.AvailabilityWindow
	for _, w := range req.Windows {
		start, err := parseDateTime(w.Date, w.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_window_start"})
			return
		}
		end, err := parseDateTime(w.Date, w.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_window_end"})
			return
		}
		if !end.After(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_interval"})
			return
		}

		toCreate = append(toCreate, models.AvailabilityWindow{
			BarberID:  id,
			StartTime: start,
			EndTime:   end,
		})
	}

	if err := h.db.Where("barber_id = ?", id).Delete(&models.AvailabilityWindow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_windows"})
		return
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_windows"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
