package controllers

import (
	"net/http"

	"frydays/middleware"
	"frydays/models"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart godoc
// @Summary Get cart
// @Description Lines of the logged-in user's cart with subtotal, delivery fee and total
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 401 {object} models.ErrorResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	view, err := ctrl.carts.View(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Erro ao buscar carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Carrinho", view)
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Adds quantity (default 1) to the item's line, creating it if needed
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CartLineRequest true "Item"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.CartLineRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := ctrl.carts.Add(c.Request.Context(), user.ID, req.MenuItemID, req.Quantity)
	if err != nil {
		respondError(c, err, "Erro ao adicionar item ao carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Item adicionado ao carrinho!", view)
}

// UpdateCartItem godoc
// @Summary Set cart line quantity
// @Description A quantity of zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart line ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := ctrl.carts.SetQuantity(c.Request.Context(), user.ID, id, *req.Quantity)
	if err != nil {
		respondError(c, err, "Erro ao atualizar item do carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Carrinho atualizado!", view)
}

// RemoveCartItem godoc
// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart line ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := ctrl.carts.Remove(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err, "Erro ao remover item do carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Item removido do carrinho!", view)
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := ctrl.carts.Clear(c.Request.Context(), user.ID); err != nil {
		respondError(c, err, "Erro ao limpar carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Carrinho limpo com sucesso!", nil)
}

// MergeCart godoc
// @Summary Merge guest cart
// @Description Folds a guest session and/or client-held lines into the user's cart
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MergeCartRequest true "Guest cart"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/merge [post]
func (ctrl *CartController) MergeCart(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.MergeCartRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.GuestCartID == "" {
		req.GuestCartID = guestSessionID(c)
	}

	ctx := c.Request.Context()
	result, err := ctrl.carts.MergeGuest(ctx, user.ID, req.GuestCartID, services.ToCartLines(req.Items))
	if err != nil {
		respondError(c, err, "Erro ao mesclar carrinho.")
		return
	}

	view, err := ctrl.carts.View(ctx, user.ID)
	if err != nil {
		respondError(c, err, "Erro ao buscar carrinho.")
		return
	}
	respondOK(c, http.StatusOK, "Carrinho mesclado!", gin.H{
		"merged":  result.Merged,
		"skipped": result.Skipped,
		"cart":    view,
	})
}
