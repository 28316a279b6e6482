package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Nenad034/isplate-backend/docs"
	"github.com/Nenad034/isplate-backend/internal/api/handler"
	"github.com/Nenad034/isplate-backend/internal/api/middleware"
	"github.com/Nenad034/isplate-backend/internal/assistant"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
	"github.com/Nenad034/isplate-backend/internal/core/service"
	"github.com/Nenad034/isplate-backend/internal/infrastructure/config"
	mongodb "github.com/Nenad034/isplate-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Nenad034/isplate-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb and remote are optional; passing nil disables snapshot caching and
// remote assistant delegation respectively.
func NewRouter(db *mongo.Database, rdb *redis.Client, remote ports.RemoteModel, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("isplate"))

	// --- Repositories ---
	supplierRepo := mongodb.NewSupplierRepository(db)
	hotelRepo := mongodb.NewHotelRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	// --- Services ---
	activityService := service.NewActivityService(activityRepo, log)
	supplierService := service.NewRecordService[*domain.Supplier]("supplier", supplierRepo, activityService, log)
	hotelService := service.NewRecordService[*domain.Hotel]("hotel", hotelRepo, activityService, log)
	paymentService := service.NewRecordService[*domain.Payment]("payment", paymentRepo, activityService, log)
	userRecords := service.NewRecordService[*domain.User]("user", userRepo, activityService, log)
	userService := service.NewUserService(userRepo, userRecords, log)
	authService := service.NewAuthService(userRepo, activityService, cfg.JWTSecret, log)
	assistantService := service.NewAssistantService(remote, log)

	var cache ports.SnapshotCache
	if rdb != nil {
		cache = redisdb.NewSnapshotCache(rdb, log)
	}
	snapshots := assistant.NewSnapshotBuilder(paymentRepo, supplierRepo, hotelRepo, cache)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	supplierHandler := handler.NewRecordHandler[*domain.Supplier](supplierService, func() *domain.Supplier { return &domain.Supplier{} })
	hotelHandler := handler.NewRecordHandler[*domain.Hotel](hotelService, func() *domain.Hotel { return &domain.Hotel{} })
	paymentHandler := handler.NewRecordHandler[*domain.Payment](paymentService, func() *domain.Payment { return &domain.Payment{} })
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)
	assistantHandler := handler.NewAssistantHandler(assistantService, snapshots, log)
	transferHandler := handler.NewTransferHandler(paymentService, supplierService, hotelService, activityService, log)

	auth := middleware.Auth(cfg.JWTSecret)
	viewer := middleware.RequireRole(domain.RoleViewer)
	editor := middleware.RequireRole(domain.RoleEditor)
	admin := middleware.RequireRole(domain.RoleAdmin)

	// --- Session ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me, auth, viewer)

	// --- Records ---
	registerRecordRoutes(e, "/suppliers", supplierHandler, auth, viewer, editor)
	registerRecordRoutes(e, "/hotels", hotelHandler, auth, viewer, editor)
	registerRecordRoutes(e, "/payments", paymentHandler, auth, viewer, editor)

	// --- Accounts (Admin only) ---
	users := e.Group("/users", auth, admin)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("", userHandler.Update)
	users.DELETE("", userHandler.Delete)
	users.PATCH("", userHandler.Restore)

	// --- Activity log ---
	e.GET("/activity-logs", activityHandler.List, auth, viewer)
	e.POST("/activity-logs", activityHandler.Append, auth, viewer)

	// --- Assistant ---
	e.POST("/ai-chat", assistantHandler.Chat, auth, viewer)

	// --- Import / export ---
	e.GET("/export/payments", transferHandler.ExportPayments, auth, viewer)
	e.POST("/import/:target", transferHandler.Import, auth, editor)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// registerRecordRoutes wires the shared record surface for one entity:
// reads need Viewer, every mutation needs Editor. The extra Admin check for
// hard deletion lives inside the handler because it depends on the request
// body, not the route.
func registerRecordRoutes[T domain.Resource](e *echo.Echo, prefix string, h *handler.RecordHandler[T], auth, viewer, editor echo.MiddlewareFunc) {
	g := e.Group(prefix, auth)
	g.GET("", h.List, viewer)
	g.POST("", h.Create, editor)
	g.PUT("", h.Update, editor)
	g.DELETE("", h.Delete, editor)
	g.PATCH("", h.Restore, editor)
}
