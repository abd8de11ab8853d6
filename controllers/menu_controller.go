package controllers

import (
	"fmt"
	"net/http"

	"frydays/models"
	"frydays/repositories"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// ListMenu godoc
// @Summary List menu items
// @Description List all menu items, optionally filtered by category
// @Tags Menu
// @Produce json
// @Param category query string false "Category tag, e.g. hamburgueres"
// @Success 200 {object} models.Response{data=[]models.MenuItem}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/menu [get]
func (ctrl *MenuController) ListMenu(c *gin.Context) {
	items, err := ctrl.menu.List(c.Request.Context(), repositories.MenuFilter{Category: c.Query("category")})
	if err != nil {
		respondError(c, err, "Erro ao buscar itens do menu.")
		return
	}
	respondOK(c, http.StatusOK, "Itens do menu", items)
}

// ListFeatured godoc
// @Summary List featured menu items
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=[]models.MenuItem}
// @Router /api/menu/featured [get]
func (ctrl *MenuController) ListFeatured(c *gin.Context) {
	items, err := ctrl.menu.List(c.Request.Context(), repositories.MenuFilter{FeaturedOnly: true})
	if err != nil {
		respondError(c, err, "Erro ao buscar itens em destaque.")
		return
	}
	respondOK(c, http.StatusOK, "Itens em destaque", items)
}

// GetMenuItem godoc
// @Summary Get menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response{data=models.MenuItem}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := ctrl.menu.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Erro ao buscar item do menu.")
		return
	}
	respondOK(c, http.StatusOK, "Item do menu", item)
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description New items are never featured
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response{data=models.MenuItem}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := ctrl.menu.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao adicionar item do menu.")
		return
	}
	respondOK(c, http.StatusCreated, "Item de menu adicionado com sucesso!", item)
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Description Partial update; only the fields present are changed
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} models.Response{data=models.MenuItem}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [put]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := ctrl.menu.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		respondError(c, err, "Erro ao atualizar item do menu.")
		return
	}
	respondOK(c, http.StatusOK, fmt.Sprintf("Item ID %d atualizado com sucesso.", id), item)
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.menu.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Erro ao excluir item do menu.")
		return
	}
	respondOK(c, http.StatusOK, fmt.Sprintf("Item ID %d excluído com sucesso.", id), nil)
}
