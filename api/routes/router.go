// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/auth"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/bookings"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/notifications"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/reservation"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/seats"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/settings"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/database"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"

	_ "github.com/Abu-ellil/arena-app-abosaleh/docs"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	cache         cache.Service
	notifications *notifications.Service
	log           *logger.Logger

	// Filled while routes are set up, for dependency injection
	settingsService settings.Service
	eventService    events.Service
	seatService     seats.Service
	bookingService  bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, notificationService *notifications.Service, log *logger.Logger) *Router {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Router{
		config:        cfg,
		db:            db,
		cache:         cacheService,
		notifications: notificationService,
		log:           log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Settings first: events and seats read currency and tier prices from it
		r.setupSettingsRoutes(api)
		r.setupEventRoutes(api)
		r.setupSeatRoutes(api)

		r.setupNotificationRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// Shutdown stops the reservation timers
func (r *Router) Shutdown() {
	if r.bookingService != nil {
		r.bookingService.Shutdown()
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "arena-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "arena-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"notify_mode": r.notifications.Mode(),
			"redis_cache": r.db.GetRedisClient() != nil,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures admin setup and login
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config, r.log)
	authController := auth.NewController(authService, r.log)

	auth.SetupRoutes(rg, authController)
}

// setupSettingsRoutes configures currency and site settings
func (r *Router) setupSettingsRoutes(rg *gin.RouterGroup) {
	settingsRepo := settings.NewRepository(r.db.GetPostgreSQL())
	r.settingsService = settings.NewService(settingsRepo, r.cache, r.config.Defaults, r.log)
	settingsController := settings.NewController(r.settingsService)

	settings.SetupSettingsRoutes(rg, settingsController, r.config)
}

// setupEventRoutes configures event browsing and management
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(eventRepo, r.cache, r.settingsService, r.config.Defaults.BronzePrice, r.log)
	eventController := events.NewController(r.eventService)

	events.SetupEventRoutes(rg, eventController, r.config)
}

// setupSeatRoutes configures seat maps and layouts
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	r.seatService = seats.NewService(seatRepo, r.eventService, r.settingsService, r.cache, r.log)

	// Inject seat prices into events for the "starting from" price
	r.eventService.SetSeatPrices(r.seatService)

	seats.SetupSeatRoutes(rg, seats.NewController(r.seatService), r.config)
}

// setupNotificationRoutes configures the direct order forwarding endpoint
func (r *Router) setupNotificationRoutes(rg *gin.RouterGroup) {
	notifications.SetupNotificationRoutes(rg, notifications.NewController(r.notifications))
}

// setupBookingRoutes configures selection, checkout and payment
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	processor := checkout.NewProcessor(r.notifications, time.Now, r.log)

	r.bookingService = bookings.NewService(bookings.Dependencies{
		Events:    r.eventService,
		Seats:     r.seatService,
		Settings:  r.settingsService,
		Processor: processor,
	}, bookings.Config{
		Budgets: reservation.Budgets{
			Selection: r.config.Reservation.SelectionWindow,
			Checkout:  r.config.Reservation.CheckoutWindow,
			Payment:   r.config.Reservation.PaymentWindow,
		},
		Retention:  r.config.Reservation.ExpiredRetained,
		EventTitle: r.config.Defaults.EventTitle,
	}, r.log)

	bookings.SetupBookingRoutes(rg, bookings.NewController(r.bookingService))
}
