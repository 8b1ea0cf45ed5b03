package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mensagens por código — o que o cliente da API vê.
var messages = map[string]string{
	CodeInvalidInterval:     "Intervalo inválido: fim deve ser depois do início.",
	CodeNotFound:            "Registro não encontrado.",
	CodeTimeConflict:        "Conflito de horário.",
	CodeUnsupportedService:  "Serviço não oferecido por este barbeiro.",
	CodeInvalidState:        "Transição de status inválida.",
	CodeRoleConflict:        "Já existe um barbeiro chefe ativo.",
	CodeAgeRestriction:      "Barbeiro precisa ter no mínimo 21 anos.",
	CodeProtectedEntity:     "Barbeiro chefe não pode ser removido sem antes transferir o cargo.",
	CodeLockTimeout:         "Agenda ocupada no momento, tente novamente.",
	CodeOutsideAvailability: "Fora das janelas de disponibilidade do barbeiro.",
	CodeInvalidRating:       "Nota deve estar entre 1 e 5.",
	CodeAlreadyExists:       "Registro duplicado.",
}

var statuses = map[string]int{
	CodeInvalidInterval:     http.StatusBadRequest,
	CodeNotFound:            http.StatusNotFound,
	CodeTimeConflict:        http.StatusConflict,
	CodeUnsupportedService:  http.StatusUnprocessableEntity,
	CodeInvalidState:        http.StatusConflict,
	CodeRoleConflict:        http.StatusConflict,
	CodeAgeRestriction:      http.StatusUnprocessableEntity,
	CodeProtectedEntity:     http.StatusConflict,
	CodeLockTimeout:         http.StatusServiceUnavailable,
	CodeOutsideAvailability: http.StatusUnprocessableEntity,
	CodeInvalidRating:       http.StatusBadRequest,
	CodeAlreadyExists:       http.StatusConflict,
}

// FromError escreve a resposta HTTP correspondente a um erro de negócio.
// Erros que não são de negócio viram 500 genérico (nunca vazamos erro cru
// do banco para o caller).
func FromError(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		status, found := statuses[code]
		if !found {
			status = http.StatusBadRequest
		}
		Write(c, status, code, messages[code])
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
