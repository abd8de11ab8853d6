package controllers

import (
	"fmt"
	"net/http"

	"frydays/models"
	"frydays/repositories"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	promotions *services.PromotionService
}

func NewPromotionController(promotions *services.PromotionService) *PromotionController {
	return &PromotionController{promotions: promotions}
}

// ListPromotions godoc
// @Summary List promotions
// @Tags Promotions
// @Produce json
// @Param slot query string false "Placement slot" Enums(highlight_1, highlight_2, highlight_3, promo_page)
// @Success 200 {object} models.Response{data=[]models.Promotion}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/promotions [get]
func (ctrl *PromotionController) ListPromotions(c *gin.Context) {
	promos, err := ctrl.promotions.List(c.Request.Context(), repositories.PromotionFilter{Slot: c.Query("slot")})
	if err != nil {
		respondError(c, err, "Erro ao buscar promoções.")
		return
	}
	respondOK(c, http.StatusOK, "Promoções", promos)
}

// CreatePromotion godoc
// @Summary Create promotion
// @Tags Promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePromotionRequest true "Promotion"
// @Success 201 {object} models.Response{data=models.Promotion}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/promotions [post]
func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	var req models.CreatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}

	promo, err := ctrl.promotions.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao adicionar promoção.")
		return
	}
	respondOK(c, http.StatusCreated, "Promoção adicionada com sucesso!", promo)
}

// DeletePromotion godoc
// @Summary Delete promotion
// @Tags Promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/promotions/{id} [delete]
func (ctrl *PromotionController) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.promotions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Erro ao excluir promoção.")
		return
	}
	respondOK(c, http.StatusOK, fmt.Sprintf("Promoção ID %d excluída com sucesso.", id), nil)
}
