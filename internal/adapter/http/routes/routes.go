package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "fmrental_prestige/docs" // swagger spec
	"fmrental_prestige/internal/adapter/http/handlers"
	"fmrental_prestige/internal/adapter/http/middleware"
	"fmrental_prestige/internal/adapter/persistence/repository"
	"fmrental_prestige/internal/infrastructure/config"
	"fmrental_prestige/internal/infrastructure/database"
	"fmrental_prestige/internal/infrastructure/observability"
	"fmrental_prestige/internal/usecase"
	"fmrental_prestige/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const PathMetrics = "/metrics"

// Dependencies are the collaborators the router dispatches to.
type Dependencies struct {
	Reservations usecase.IReservationUseCase
	Reviews      usecase.IReviewUseCase
	Diagnostics  usecase.IDiagnosticsUseCase
	Registry     *prometheus.Registry
	Logger       zerolog.Logger
	CORSOrigins  []string
}

// NewRouter builds the gin engine with middlewares and every public route.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Registry != nil {
		router.GET(PathMetrics, gin.WrapH(observability.MetricsHandler(deps.Registry)))
	}

	addHealthRoutes(router, handlers.NewHealthHandler(deps.Diagnostics))
	addRentalRoutes(router.Group(PathAPI),
		handlers.NewReservationHandler(deps.Reservations),
		handlers.NewReviewHandler(deps.Reviews),
	)
	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Metrics())
}

// Run wires the document store, builds the router and serves until ctx is
// cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config) error {
	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := buildDependencies(ctx, cfg)
	router := NewRouter(deps)

	srv := &http.Server{Addr: cfg.HTTPAddr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	servers := []*http.Server{srv}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(PathMetrics, observability.MetricsHandler(deps.Registry))
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			log.Info().Str("addr", s.Addr).Msg("listening")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, s := range servers {
			errs = append(errs, s.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// buildDependencies connects to DynamoDB and assembles the usecases. A store
// that cannot be configured leaves the repositories nil: the server still
// starts and store-backed endpoints answer STORE_UNAVAILABLE.
func buildDependencies(ctx context.Context, cfg config.Config) Dependencies {
	var (
		reservationRepo interfaces.IReservationRepository
		reviewRepo      interfaces.IReviewRepository
		inspector       interfaces.IStoreInspector
	)

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Error().Err(err).Msg("document store not configured")
	} else {
		if cfg.DynamoDB.CreateTables {
			specs := database.RentalTables(cfg.DynamoDB.ReservationsTable, cfg.DynamoDB.ReviewsTable)
			if err := database.EnsureTables(ctx, ddb, specs); err != nil {
				log.Error().Err(err).Msg("table bootstrap failed")
			}
		}
		reservationRepo = repository.NewReservationDynamoRepository(ddb, cfg.DynamoDB.ReservationsTable)
		reviewRepo = repository.NewReviewDynamoRepository(ddb, cfg.DynamoDB.ReviewsTable)
		inspector = database.NewStoreInspector(ddb, cfg.DynamoDB)
	}

	return Dependencies{
		Reservations: usecase.NewReservationUseCase(reservationRepo),
		Reviews:      usecase.NewReviewUseCase(reviewRepo),
		Diagnostics:  usecase.NewDiagnosticsUseCase(inspector),
		Registry:     observability.InitRegistry(),
		Logger:       log.Logger,
		CORSOrigins:  cfg.CORSOrigins,
	}
}
