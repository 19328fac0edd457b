package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/config"
	"github.com/mmynk/memberportal/internal/metrics"
	"github.com/mmynk/memberportal/internal/middleware"
	"github.com/mmynk/memberportal/internal/profile"
	"github.com/mmynk/memberportal/internal/service"
	"github.com/mmynk/memberportal/internal/storage/sqlite"
	"github.com/mmynk/memberportal/pkg/api/apiconnect"
	"github.com/mmynk/memberportal/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	enroller := auth.NewEnroller(store)
	gateway, closeGateway, err := buildGateway(ctx, cfg, enroller, logger)
	if err != nil {
		return err
	}
	defer closeGateway()

	flows := auth.NewFlows(service.NewMeteredGateway(gateway, m), auth.FlowConfig{
		ResendCooldown: cfg.OTP.ResendCooldown,
		Tick:           time.Second,
		MaxAttempts:    cfg.OTP.MaxAttempts,
	}, cfg.OTP.FlowTTL)
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	profiles := profile.NewRegistry()

	// metrics outermost so rejected tokens are counted; logging inside auth to see the member
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager, service.PublicProcedures...),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()

	// Register Connect services
	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		service.NewAuthService(enroller, flows, jwtManager, profiles, m, logger),
		interceptors,
	)
	mux.Handle(authPath, authHandler)

	profilePath, profileHandler := apiconnect.NewProfileServiceHandler(
		service.NewProfileService(profiles, m, logger),
		interceptors,
	)
	mux.Handle(profilePath, profileHandler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	handler := loggingMiddleware(logger, corsMiddleware(cfg.HTTP.AllowedOrigins(), mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	apiServer := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	servers := []*http.Server{apiServer}

	if cfg.Metrics.Enabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		servers = append(servers, &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("Server starting", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// buildGateway picks the OTP mechanism. Local mode keeps challenges in Redis when
// REDIS_URL is set and in memory otherwise.
func buildGateway(ctx context.Context, cfg config.Config, enroller *auth.Enroller, logger *slog.Logger) (auth.Gateway, func(), error) {
	if cfg.OTP.Mode == config.OTPModeRemote {
		logger.Info("Using remote OTP service", "base_url", cfg.OTP.BaseURL)
		return auth.NewHTTPGateway(cfg.OTP.BaseURL, cfg.OTP.Timeout), func() {}, nil
	}

	var store auth.ChallengeStore = auth.NewMemoryChallengeStore()
	closeStore := func() {}
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = auth.NewRedisChallengeStore(client)
		closeStore = func() { _ = client.Close() }
		logger.Info("OTP challenges stored in redis", "addr", opts.Addr)
	}

	codes := auth.RandomCode(6)
	if cfg.OTP.FixedCode != "" {
		codes = auth.FixedCode(cfg.OTP.FixedCode)
		logger.Warn("Using a fixed OTP code; do not run this in production")
	}

	gateway := auth.NewLocalGateway(codes, store, cfg.OTP.TTL,
		auth.WithIdentityCheck(enroller),
		auth.WithSender(auth.LogSender{Logger: logger}),
	)
	return gateway, closeStore, nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access. An empty origin list allows any origin.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(origins) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(origins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, Field-Error")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
