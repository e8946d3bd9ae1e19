package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/gymcycle/internal/auth"
	"github.com/2beens/gymcycle/internal/config"
	"github.com/2beens/gymcycle/internal/db"
	"github.com/2beens/gymcycle/internal/love"
	"github.com/2beens/gymcycle/internal/middleware"
	"github.com/2beens/gymcycle/internal/misc"
	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/setup"
	"github.com/2beens/gymcycle/internal/spreadsheet"
	"github.com/2beens/gymcycle/internal/telemetry/metrics"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/internal/workout"
	"github.com/2beens/gymcycle/pkg"
)

const (
	refCacheSizeBytes     = 1024 * 1024
	authScanCleanInterval = 8 * time.Hour
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	store    spreadsheet.Store
	dbPool   *pgxpool.Pool
	refCache *freecache.Cache

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service
	notifier     *notify.Notifier

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     config.Secrets
	VersionInfo string
	// Telegram may be nil, notifications are then skipped
	Telegram *notify.Client
	// Store overrides the configured storage backend, used in tests
	Store spreadsheet.Store
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var (
		dbPool     *pgxpool.Pool
		collectors []prometheus.Collector
	)
	if params.Store == nil && cfg.Storage == config.StoragePostgres {
		var err error
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.Secrets.PostgresPassword,
			TracingEnabled: params.Secrets.HoneycombEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("gymcycle", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.Secrets.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Warnln("redis not configured, check-in lock and rate limiting disabled")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Secrets.HoneycombEnabled, "gymcycle-backend", rdb)
	if err != nil {
		return nil, err
	}

	store, err := newStore(ctx, cfg, params, dbPool)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		store:       spreadsheet.NewInstrumentedStore(store, metricsManager),
		dbPool:      dbPool,
		redisClient: rdb,
		notifier:    notify.NewNotifier(params.Telegram, params.Secrets.TelegramChatID, metricsManager),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.ReferenceCacheTTL.Duration > 0 {
		s.refCache = freecache.NewCache(refCacheSizeBytes)
	}

	if rdb != nil {
		var verifier interface {
			VerifyPasscode(ctx context.Context, passcode string) (bool, error)
		} = love.NewRepo(s.store)
		if params.Secrets.LovePasscodeHash != "" {
			verifier = auth.NewHashVerifier(params.Secrets.LovePasscodeHash)
		}
		s.authService = auth.NewAuthService(verifier, auth.DefaultTTL, rdb)
		s.loginChecker = auth.NewLoginChecker(auth.DefaultTTL, rdb)
		go s.cleanAuthSessions(ctx)
	} else if cfg.LoveAuthEnabled {
		return nil, errors.New("love auth enabled, but redis not configured")
	}

	return s, nil
}

func newStore(ctx context.Context, cfg *config.Config, params NewServerParams, dbPool *pgxpool.Pool) (spreadsheet.Store, error) {
	if params.Store != nil {
		return params.Store, nil
	}

	switch cfg.Storage {
	case config.StoragePostgres:
		pgStore := spreadsheet.NewPostgresStore(dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		return pgStore, nil
	case config.StorageMemory:
		memStore := spreadsheet.NewMemoryStore()
		if err := multierr.Combine(
			setup.Fitness(ctx, memStore),
			setup.Migrate(ctx, memStore),
			setup.Love(ctx, memStore),
		); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		log.Warnln("using in-memory store, nothing will be persisted")
		return memStore, nil
	default:
		googleStore, err := spreadsheet.NewGoogleStore(
			ctx,
			params.Secrets.SheetID,
			[]byte(params.Secrets.GoogleServiceAccountJSON),
		)
		if err != nil {
			return nil, fmt.Errorf("new google sheets store: %w", err)
		}
		return googleStore, nil
	}
}

func (s *Server) cleanAuthSessions(ctx context.Context) {
	ticker := time.NewTicker(authScanCleanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

// Notifier is used by main to report a crash before exiting.
func (s *Server) Notifier() *notify.Notifier {
	return s.notifier
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	var rateLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		rateLimiter = redis_rate.NewLimiter(s.redisClient)
	}

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	workoutRepo := workout.NewRepo(s.store, s.config.Location(), s.refCache, s.config.ReferenceCacheTTL.Duration)
	serviceParams := workout.NewServiceParams{
		Repo:        workoutRepo,
		Notifier:    s.notifier,
		Metrics:     s.metricsManager,
		Location:    s.config.Location(),
		DefaultMode: workout.Mode(s.config.DefaultMode),
	}
	if s.redisClient != nil {
		serviceParams.Lock = workout.NewRedisCheckinLock(s.redisClient, s.config.CheckinLockTTL.Duration)
	}
	workoutHandler := workout.NewHandler(workout.NewService(serviceParams))

	checkinRateLimit := middleware.RateLimit(rateLimiter, "checkin", s.config.CheckinRateLimitPerMin, s.metricsManager)
	r.HandleFunc("/today-plan", workoutHandler.HandleTodayPlan).Methods("GET").Name("today-plan")
	r.HandleFunc("/month-summary", workoutHandler.HandleMonthSummary).Methods("GET").Name("month-summary")
	r.Handle("/log", checkinRateLimit(http.HandlerFunc(workoutHandler.HandleLog))).Methods("POST").Name("log")
	r.Handle("/quick-checkin", checkinRateLimit(http.HandlerFunc(workoutHandler.HandleQuickCheckin))).Methods("POST").Name("quick-checkin")
	r.HandleFunc("/exercise-check", workoutHandler.HandleExerciseCheck).Methods("POST").Name("exercise-check")
	r.HandleFunc("/sessions", workoutHandler.HandleSessions).Methods("GET").Name("sessions")
	r.HandleFunc("/exercises", workoutHandler.HandleExercises).Methods("GET").Name("exercises")
	r.HandleFunc("/bodyweight", workoutHandler.HandleBodyweight).Methods("POST").Name("bodyweight")
	r.HandleFunc("/bodyweight-history", workoutHandler.HandleBodyweightHistory).Methods("GET").Name("bodyweight-history")
	r.HandleFunc("/year-heatmap", workoutHandler.HandleYearHeatmap).Methods("GET").Name("year-heatmap")

	loveRepo := love.NewRepo(s.store)
	var loveHandler *love.Handler
	if s.authService != nil {
		loveHandler = love.NewHandler(loveRepo, s.authService)
	} else {
		loveHandler = love.NewHandler(loveRepo, nil)
	}
	loveHandler.SetupRoutes(r, rateLimiter, s.metricsManager, s.config.LoveUnlockRateLimitPerMin)

	// preflight for every route, the cors middleware answers it
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Name("preflight")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, http.StatusNotFound, "not found")
	})

	var loginChecker auth.Checker = auth.NewTestChecker()
	if s.loginChecker != nil {
		loginChecker = s.loginChecker
	}
	authMiddleware := middleware.NewLoveAuthHandler(s.config.LoveAuthEnabled, loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

// Serve starts the api and the metrics servers. Listen failures are sent on the returned channel.
func (s *Server) Serve(_ context.Context, host string, port int) (<-chan error, error) {
	router, err := s.routerSetup()
	if err != nil {
		return nil, fmt.Errorf("setup router: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErrors := make(chan error, 2)
	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErrors <- fmt.Errorf("main service, listen and serve: %w", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErrors <- fmt.Errorf("metrics service, listen and serve: %w", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return listenErrors, nil
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	// pending notifications go out before the clients are closed
	s.notifier.Wait()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
