package routes

import (
	"net/http"
	"time"

	"frydays/controllers"
	"frydays/libs"
	"frydays/metrics"
	"frydays/middleware"
	"frydays/repositories"
	"frydays/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const contactRateLimitMessage = "Muitas tentativas de envio de e-mail deste IP. Tente novamente após uma hora."

type Dependencies struct {
	Tokens         *utils.TokenManager
	Users          repositories.UserRepository
	ContactLimiter libs.Limiter
	ContactWindow  time.Duration

	Auth       *controllers.AuthController
	Admin      *controllers.AdminController
	Menu       *controllers.MenuController
	Promotions *controllers.PromotionController
	Cart       *controllers.CartController
	GuestCart  *controllers.GuestCartController
	Contact    *controllers.ContactController
	Upload     *controllers.UploadController
}

func SetupRoutes(router *gin.Engine, d *Dependencies) {
	requireAuth := middleware.AuthMiddleware(d.Tokens)
	requireAdmin := middleware.AdminMiddleware(d.Users)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", metrics.Handler())

	router.POST("/login", d.Auth.Login)
	router.POST("/register", d.Auth.Register)
	router.GET("/profile", requireAuth, d.Auth.Profile)
	router.POST("/contact",
		middleware.RateLimit(d.ContactLimiter, d.ContactWindow, contactRateLimitMessage),
		d.Contact.SendContact,
	)

	router.GET("/admin/dashboard", requireAuth, requireAdmin, d.Admin.Dashboard)

	api := router.Group("/api")
	{
		api.GET("/menu", d.Menu.ListMenu)
		api.GET("/menu/featured", d.Menu.ListFeatured)
		api.GET("/menu/:id", d.Menu.GetMenuItem)
		api.GET("/promotions", d.Promotions.ListPromotions)

		api.GET("/guest-cart", d.GuestCart.GetGuestCart)
		api.POST("/guest-cart", d.GuestCart.AddToGuestCart)
		api.DELETE("/guest-cart", d.GuestCart.ClearGuestCart)
		api.PUT("/guest-cart/:menu_item_id", d.GuestCart.UpdateGuestCartItem)
		api.DELETE("/guest-cart/:menu_item_id", d.GuestCart.RemoveGuestCartItem)
	}

	cart := api.Group("/cart")
	cart.Use(requireAuth)
	{
		cart.GET("", d.Cart.GetCart)
		cart.POST("", d.Cart.AddToCart)
		cart.DELETE("", d.Cart.ClearCart)
		cart.POST("/merge", d.Cart.MergeCart)
		cart.PUT("/:id", d.Cart.UpdateCartItem)
		cart.DELETE("/:id", d.Cart.RemoveCartItem)
	}

	admin := api.Group("")
	admin.Use(requireAuth, requireAdmin)
	{
		admin.POST("/menu", d.Menu.CreateMenuItem)
		admin.PUT("/menu/:id", d.Menu.UpdateMenuItem)
		admin.DELETE("/menu/:id", d.Menu.DeleteMenuItem)

		admin.POST("/promotions", d.Promotions.CreatePromotion)
		admin.DELETE("/promotions/:id", d.Promotions.DeletePromotion)

		admin.POST("/uploads/image", d.Upload.UploadImage)
	}
}
