package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"frydays/models"
	"frydays/repositories"
	"frydays/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextAuthUser  = "auth_user"
)

// AuthMiddleware requires a valid bearer token. A missing token is 401; a
// token that fails signature or expiry checks is 403.
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Acesso negado. Nenhum token fornecido.",
				Error:   "unauthenticated",
			})
			return
		}

		claims, err := tokens.ValidateToken(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Token inválido ou expirado.",
				Error:   "forbidden-token",
			})
			return
		}

		setAuthUser(c, claims.Identity())
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. It re-reads the user by the
// token's email on every request so a revoked admin flag takes effect before
// the token expires.
func AdminMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Acesso negado. Token não fornecido.",
				Error:   "unauthenticated",
			})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), authUser.Email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error checking admin privilege for %s: %v", authUser.Email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Erro interno do servidor ao verificar permissões.",
			})
			return
		}
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Acesso negado. Usuário não é administrador.",
				Error:   "forbidden-privilege",
			})
			return
		}

		setAuthUser(c, user.Identity())
		c.Next()
	}
}

func setAuthUser(c *gin.Context, user models.AuthUser) {
	c.Set(ContextUserID, user.ID)
	c.Set(ContextUserEmail, user.Email)
	c.Set(ContextAuthUser, user)
}

func CurrentUser(c *gin.Context) (models.AuthUser, bool) {
	value, exists := c.Get(ContextAuthUser)
	if !exists {
		return models.AuthUser{}, false
	}
	user, ok := value.(models.AuthUser)
	return user, ok
}
