package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// CREATE (telefone é único)
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	var count int64
	h.db.Model(&models.Client{}).Where("phone = ?", client.Phone).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "phone_already_exists"})
		return
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}
