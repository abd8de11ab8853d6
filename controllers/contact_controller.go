package controllers

import (
	"net/http"

	"frydays/models"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

// SendContact godoc
// @Summary Send contact message
// @Description Emails the site owner. Limited to 3 submissions per hour per IP.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) SendContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Todos os campos obrigatórios devem ser preenchidos.", validationMessage(err))
		return
	}

	if err := ctrl.contact.Send(req); err != nil {
		respondError(c, err, "Ocorreu um erro no servidor ao tentar enviar a mensagem.")
		return
	}
	respondOK(c, http.StatusOK, "Mensagem enviada com sucesso! Agradecemos o contato.", nil)
}
