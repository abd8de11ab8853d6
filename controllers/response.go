package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"frydays/cart"
	"frydays/libs"
	"frydays/models"
	"frydays/repositories"
	"frydays/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, models.ErrorResponse{Success: false, Message: message, Error: detail})
}

// respondError maps domain errors onto HTTP statuses. Anything unrecognised
// is logged and reported as a generic 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		respondFail(c, http.StatusNotFound, "Registro não encontrado.", "not-found")
	case errors.Is(err, repositories.ErrDuplicateEmail):
		respondFail(c, http.StatusBadRequest, "Email já registrado", "duplicate-email")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondFail(c, http.StatusUnauthorized, "Email ou senha inválidos", "invalid-credentials")
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, repositories.ErrInvalidFilter),
		errors.Is(err, cart.ErrQuantityLimit),
		errors.Is(err, libs.ErrInvalidImage):
		respondFail(c, http.StatusBadRequest, err.Error(), "validation")
	case errors.Is(err, libs.ErrUploaderNotConfigured),
		errors.Is(err, libs.ErrMailerNotConfigured):
		respondFail(c, http.StatusServiceUnavailable, "Serviço indisponível no momento.", "unavailable")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		respondFail(c, http.StatusInternalServerError, fallback, "internal")
	}
}

// bindJSON decodes the body into req and answers 400 with the failing
// fields when binding or validation fails.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondFail(c, http.StatusBadRequest, "Dados inválidos.", validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "gt", "gte", "lt", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "ID inválido.", "validation")
		return 0, false
	}
	return id, true
}
