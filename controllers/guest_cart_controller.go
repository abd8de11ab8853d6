package controllers

import (
	"net/http"

	"frydays/middleware"
	"frydays/models"
	"frydays/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GuestCartController serves carts of visitors who are not logged in. The
// session id travels in the X-Guest-Cart header; adding to a cart without one
// starts a new session and returns its id in the same header.
type GuestCartController struct {
	carts *services.CartService
}

func NewGuestCartController(carts *services.CartService) *GuestCartController {
	return &GuestCartController{carts: carts}
}

// guestSessionID returns the request's guest session id, or "" when the
// header is absent or not a UUID.
func guestSessionID(c *gin.Context) string {
	id, err := uuid.Parse(c.GetHeader(middleware.GuestCartHeader))
	if err != nil {
		return ""
	}
	return id.String()
}

func emptyCartView() *models.CartView {
	return &models.CartView{Items: []models.CartLine{}}
}

// GetGuestCart godoc
// @Summary Get guest cart
// @Tags Guest Cart
// @Produce json
// @Param X-Guest-Cart header string false "Guest session id"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /api/guest-cart [get]
func (ctrl *GuestCartController) GetGuestCart(c *gin.Context) {
	sessionID := guestSessionID(c)
	if sessionID == "" {
		respondOK(c, http.StatusOK, "Carrinho", emptyCartView())
		return
	}

	view, err := ctrl.carts.GuestView(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err, "Erro ao buscar carrinho.")
		return
	}
	c.Header(middleware.GuestCartHeader, sessionID)
	respondOK(c, http.StatusOK, "Carrinho", view)
}

// AddToGuestCart godoc
// @Summary Add item to guest cart
// @Tags Guest Cart
// @Accept json
// @Produce json
// @Param X-Guest-Cart header string false "Guest session id; a new one is issued when absent"
// @Param request body models.CartLineRequest true "Item"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/guest-cart [post]
func (ctrl *GuestCartController) AddToGuestCart(c *gin.Context) {
	var req models.CartLineRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionID := guestSessionID(c)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	view, err := ctrl.carts.GuestAdd(c.Request.Context(), sessionID, req.MenuItemID, req.Quantity)
	if err != nil {
		respondError(c, err, "Erro ao adicionar item ao carrinho.")
		return
	}
	c.Header(middleware.GuestCartHeader, sessionID)
	respondOK(c, http.StatusOK, "Item adicionado ao carrinho!", view)
}

// UpdateGuestCartItem godoc
// @Summary Set guest cart line quantity
// @Description A quantity of zero or less removes the line
// @Tags Guest Cart
// @Accept json
// @Produce json
// @Param X-Guest-Cart header string true "Guest session id"
// @Param menu_item_id path int true "Menu item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/guest-cart/{menu_item_id} [put]
func (ctrl *GuestCartController) UpdateGuestCartItem(c *gin.Context) {
	menuItemID, ok := parseIDParam(c, "menu_item_id")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionID := guestSessionID(c)
	if sessionID == "" {
		respondFail(c, http.StatusNotFound, "Carrinho não encontrado.", "not-found")
		return
	}

	view, err := ctrl.carts.GuestSetQuantity(c.Request.Context(), sessionID, menuItemID, *req.Quantity)
	if err != nil {
		respondError(c, err, "Erro ao atualizar item do carrinho.")
		return
	}
	c.Header(middleware.GuestCartHeader, sessionID)
	respondOK(c, http.StatusOK, "Carrinho atualizado!", view)
}

// RemoveGuestCartItem godoc
// @Summary Remove guest cart line
// @Tags Guest Cart
// @Produce json
// @Param X-Guest-Cart header string true "Guest session id"
// @Param menu_item_id path int true "Menu item ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/guest-cart/{menu_item_id} [delete]
func (ctrl *GuestCartController) RemoveGuestCartItem(c *gin.Context) {
	menuItemID, ok := parseIDParam(c, "menu_item_id")
	if !ok {
		return
	}

	sessionID := guestSessionID(c)
	if sessionID == "" {
		respondFail(c, http.StatusNotFound, "Carrinho não encontrado.", "not-found")
		return
	}

	view, err := ctrl.carts.GuestRemove(c.Request.Context(), sessionID, menuItemID)
	if err != nil {
		respondError(c, err, "Erro ao remover item do carrinho.")
		return
	}
	c.Header(middleware.GuestCartHeader, sessionID)
	respondOK(c, http.StatusOK, "Item removido do carrinho!", view)
}

// ClearGuestCart godoc
// @Summary Clear guest cart
// @Tags Guest Cart
// @Produce json
// @Param X-Guest-Cart header string false "Guest session id"
// @Success 200 {object} models.Response
// @Router /api/guest-cart [delete]
func (ctrl *GuestCartController) ClearGuestCart(c *gin.Context) {
	if sessionID := guestSessionID(c); sessionID != "" {
		if err := ctrl.carts.GuestClear(c.Request.Context(), sessionID); err != nil {
			respondError(c, err, "Erro ao limpar carrinho.")
			return
		}
	}
	respondOK(c, http.StatusOK, "Carrinho limpo com sucesso!", nil)
}
