package controllers

import (
	"net/http"

	"frydays/middleware"
	"frydays/models"
	"frydays/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary User login
// @Description Login with email and password. Guest cart lines sent along are merged into the user's cart.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro interno do servidor")
		return
	}

	respondOK(c, http.StatusOK, "Login bem-sucedido", resp)
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account and issue a token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro interno do servidor")
		return
	}

	respondOK(c, http.StatusCreated, "Usuário registrado com sucesso", resp)
}

// Profile godoc
// @Summary Current user
// @Description Return the identity carried by the bearer token
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.AuthUser}
// @Failure 401 {object} models.ErrorResponse
// @Router /profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	respondOK(c, http.StatusOK, "Acesso autorizado", user)
}
