package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	domainBarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	ucBarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
)

type BarberHandler struct {
	repo       domainBarber.Repository
	create     *ucBarber.Create
	update     *ucBarber.Update
	assignRole *ucBarber.AssignRole
	delete     *ucBarber.Delete
}

func NewBarberHandler(
	repo domainBarber.Repository,
	create *ucBarber.Create,
	update *ucBarber.Update,
	assignRole *ucBarber.AssignRole,
	del *ucBarber.Delete,
) *BarberHandler {
	return &BarberHandler{
		repo:       repo,
		create:     create,
		update:     update,
		assignRole: assignRole,
		delete:     del,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Role      string `json:"role"`
	BirthDate string `json:"birth_date" binding:"required"`
	HireDate  string `json:"hire_date"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Active    *bool   `json:"active"`
	BirthDate *string `json:"birth_date"`
	HireDate  *string `json:"hire_date"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// Create cadastra barbeiro pelo painel administrativo, sem devolver
// token — login é com o cadastro pronto, via /auth/login. As mesmas
// regras de idade e de chefe único do registro valem aqui.
func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
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
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
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

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucBarber.UpdateInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: req.Active,
	}

	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		in.BirthDate = &birthDate
	}

	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_hire_date", "Data de contratação inválida.")
			return
		}
		in.HireDate = &hireDate
	}

	b, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// AssignRole promove/rebaixa. Promover segundo chefe → 409.
func (h *BarberHandler) AssignRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.assignRole.Execute(c.Request.Context(), id, req.Role)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// Delete recusa remover o chefe atual (protected_entity).
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}
