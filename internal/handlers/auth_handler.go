package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domainBarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	ucBarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type AuthHandler struct {
	repo   domainBarber.Repository
	create *ucBarber.Create
	config *config.Config
}

func NewAuthHandler(
	repo domainBarber.Repository,
	create *ucBarber.Create,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{repo: repo, create: create, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Role      string `json:"role"`
	BirthDate string `json:"birth_date" binding:"required"`
	HireDate  string `json:"hire_date"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.EmailDomainExists(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		hireDate, err = parseDate(req.HireDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_hire_date", "Data de contratação inválida.")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno.")
		return
	}

	barber := models.Barber{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		Active:       true,
		BirthDate:    birthDate,
		HireDate:     hireDate,
	}

	if err := h.create.Execute(c.Request.Context(), &barber); err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.generateToken(&barber)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barber": gin.H{
			"id":    barber.ID,
			"name":  barber.Name,
			"email": barber.Email,
			"phone": barber.Phone,
			"role":  barber.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	barber, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(barber)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": gin.H{
			"id":    barber.ID,
			"name":  barber.Name,
			"email": barber.Email,
			"phone": barber.Phone,
			"role":  barber.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(barber *models.Barber) (string, error) {
	claims := jwt.MapClaims{
		"sub":  barber.ID,
		"role": barber.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
