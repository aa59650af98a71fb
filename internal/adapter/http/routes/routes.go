package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "barbearia/docs"
	"barbearia/internal/adapter/http/handlers"
	"barbearia/internal/adapter/http/middleware"
	"barbearia/internal/adapter/persistence/repository"
	"barbearia/internal/adapter/persistence/session"
	"barbearia/internal/config"
	"barbearia/internal/infrastructure/auth"
	"barbearia/internal/infrastructure/cache"
	"barbearia/internal/infrastructure/database"
	"barbearia/internal/infrastructure/payments"
	"barbearia/internal/usecase"
	"barbearia/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const sandboxPayerEmail = "test_user_br@testuser.com"

// Handlers groups every HTTP handler the router mounts. Tokens is nil when
// operator authentication is disabled.
type Handlers struct {
	Catalog     *handlers.CatalogHandler
	Clients     *handlers.ClientHandler
	Employees   *handlers.EmployeeHandler
	Appointment *handlers.AppointmentHandler
	Checkout    *handlers.CheckoutHandler
	Sales       *handlers.SaleHandler
	Reports     *handlers.ReportHandler
	Auth        *handlers.AuthHandler
	Tokens      auth.TokenService
}

// Run wires the application from cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, cleanup, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(cfg.ServiceName, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts middlewares, docs and the /v1 API.
func NewRouter(serviceName string, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, serviceName)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(h.Tokens))
	addCatalogRoutes(protected, h)
	addPeopleRoutes(protected, h)
	addCheckoutRoutes(protected, h)
	addSalesRoutes(protected, h)
	return router
}

func setMiddlewares(router *gin.Engine, serviceName string) {
	router.Use(middleware.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.AccessLog())
}

func build(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	cleanup := func() {}

	ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, cleanup, err
	}

	catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.Tables.Catalog)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	employeeRepo := repository.NewEmployeeDynamoRepository(ddb, cfg.Tables.Employees)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb, cfg.Tables.Appointments)
	saleRepo := repository.NewSaleDynamoRepository(ddb, cfg.Tables.Sales, cfg.Tables.Appointments)

	var sessions interfaces.ICheckoutSessionStore = session.NewMemoryStore(cfg.SessionTTL)
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, keeping checkout sessions in memory")
		} else {
			sessions = session.NewRedisStore(rc, cfg.SessionTTL)
			cleanup = func() { _ = rc.Close() }
			log.Info().Str("addr", cfg.RedisAddr).Msg("checkout sessions stored in redis")
		}
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured, only cash sales will confirm")
	} else {
		gateway = mp
	}

	payerEmail := cfg.MercadoPagoTestPayerEmail
	if payerEmail == "" && strings.HasPrefix(cfg.MercadoPagoAccessToken, "TEST-") {
		payerEmail = sandboxPayerEmail
	}

	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, catalogRepo)
	checkoutUC := usecase.NewCheckoutUseCase(sessions, appointmentRepo, catalogRepo, employeeRepo, saleRepo, gateway, usecase.CheckoutOptions{
		Location:          cfg.Location,
		SandboxPayerEmail: payerEmail,
	})
	saleUC := usecase.NewSaleUseCase(saleRepo, appointmentRepo)
	reportUC := usecase.NewReportUseCase(saleRepo, cfg.Location)

	var tokens auth.TokenService
	if cfg.AuthEnabled() {
		tokens = auth.NewService(cfg.JWTSecret, cfg.TokenTTL, cfg.ServiceName)
	} else {
		log.Warn().Msg("AUTH_JWT_SECRET not set, admin routes are open")
	}

	return Handlers{
		Catalog:     handlers.NewCatalogHandler(catalogUC),
		Clients:     handlers.NewClientHandler(clientUC),
		Employees:   handlers.NewEmployeeHandler(employeeUC),
		Appointment: handlers.NewAppointmentHandler(appointmentUC),
		Checkout:    handlers.NewCheckoutHandler(checkoutUC),
		Sales:       handlers.NewSaleHandler(saleUC),
		Reports:     handlers.NewReportHandler(reportUC),
		Auth:        handlers.NewAuthHandler(employeeUC, tokens, cfg.AdminAPIKey, cfg.TokenTTL),
		Tokens:      tokens,
	}, cleanup, nil
}
