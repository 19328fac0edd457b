// Command otpmock serves the remote OTP endpoints locally so the portal can run
// with OTP_MODE=remote. Codes are logged instead of sent.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/config"
	"github.com/mmynk/memberportal/internal/otpserver"
	"github.com/mmynk/memberportal/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("OTP mock failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	codes := auth.RandomCode(6)
	if cfg.OTP.FixedCode != "" {
		codes = auth.FixedCode(cfg.OTP.FixedCode)
	}
	gateway := auth.NewLocalGateway(codes, auth.NewMemoryChallengeStore(), cfg.OTP.TTL,
		auth.WithSender(auth.LogSender{Logger: logger}),
	)

	srv := &http.Server{
		Addr:              cfg.OTP.MockAddr,
		Handler:           otpserver.NewRouter(otpserver.New(gateway, logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("OTP mock starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
