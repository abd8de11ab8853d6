package controllers

import (
	"net/http"

	"frydays/middleware"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	dashboard *services.DashboardService
}

func NewAdminController(dashboard *services.DashboardService) *AdminController {
	return &AdminController{dashboard: dashboard}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Counts of menu items, promotions and users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	data, err := ctrl.dashboard.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao carregar dashboard.")
		return
	}

	user, _ := middleware.CurrentUser(c)
	respondOK(c, http.StatusOK, "Acesso Admin autorizado", gin.H{
		"user":          user,
		"dashboardData": data,
	})
}
