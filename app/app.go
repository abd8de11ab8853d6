// Package app assembles the store, caches, services and router from a Config.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"frydays/config"
	"frydays/controllers"
	"frydays/libs"
	"frydays/metrics"
	"frydays/middleware"
	"frydays/repositories"
	"frydays/routes"
	"frydays/services"
	"frydays/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type App struct {
	Router *gin.Engine
	Store  repositories.Store
	redis  *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a, err := build(cfg, store, config.ConnectRedis(ctx, cfg))
	if err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repositories.Store, error) {
	if cfg.UseMemoryStore() {
		log.Println("Warning: no database configured, using in-memory store with demo data")
		return repositories.NewSeededMemoryStore()
	}

	dsn := cfg.DSN()
	if err := config.RunMigrations(dsn, cfg.MigrationsDir); err != nil {
		return nil, err
	}

	pool, err := config.ConnectDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return repositories.NewPostgresStore(pool), nil
}

// build wires everything above the store. rdb may be nil, in which case guest
// carts and the contact limiter stay in process memory and menu lists are not
// cached.
func build(cfg *config.Config, store repositories.Store, rdb *redis.Client) (*App, error) {
	deliveryFee, err := decimal.NewFromString(cfg.DeliveryFee)
	if err != nil || deliveryFee.IsNegative() {
		return nil, fmt.Errorf("invalid DELIVERY_FEE %q", cfg.DeliveryFee)
	}

	var (
		guests  repositories.GuestCartStore
		limiter libs.Limiter
	)
	if rdb != nil {
		guests = repositories.NewRedisGuestCartStore(rdb, cfg.GuestCartTTL)
		limiter = libs.NewRedisLimiter(rdb, "contact", cfg.ContactRateLimit, cfg.ContactRateWindow)
	} else {
		guests = repositories.NewMemoryGuestCartStore(cfg.GuestCartTTL)
		limiter = libs.NewMemoryLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
	}

	mailer, err := libs.NewMailer(cfg)
	if err != nil {
		return nil, err
	}

	var uploader libs.ImageUploader
	cld, err := libs.NewCloudinaryUploader(cfg)
	switch {
	case err == nil:
		uploader = cld
	case errors.Is(err, libs.ErrUploaderNotConfigured):
		log.Println("Cloudinary not configured, image upload disabled")
	default:
		return nil, err
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	cartService := services.NewCartService(store, guests, deliveryFee)
	authService := services.NewAuthService(store.Users(), tokens, cartService)
	menuService := services.NewMenuService(store.MenuItems(), rdb, cfg.MenuCacheTTL)
	promotionService := services.NewPromotionService(store.Promotions())
	dashboardService := services.NewDashboardService(store)
	contactService := services.NewContactService(mailer)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, &routes.Dependencies{
		Tokens:         tokens,
		Users:          store.Users(),
		ContactLimiter: limiter,
		ContactWindow:  cfg.ContactRateWindow,

		Auth:       controllers.NewAuthController(authService),
		Admin:      controllers.NewAdminController(dashboardService),
		Menu:       controllers.NewMenuController(menuService),
		Promotions: controllers.NewPromotionController(promotionService),
		Cart:       controllers.NewCartController(cartService),
		GuestCart:  controllers.NewGuestCartController(cartService),
		Contact:    controllers.NewContactController(contactService),
		Upload:     controllers.NewUploadController(uploader),
	})

	return &App{Router: router, Store: store, redis: rdb}, nil
}

func (a *App) Close() {
	a.Store.Close()
	if a.redis != nil {
		a.redis.Close()
	}
}
