// Command server runs the form relay: it accepts multipart contact-form
// submissions, validates them, and delivers them via the configured driver.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/oneshotleague/formrelay/internal/config"
	"github.com/oneshotleague/formrelay/internal/delivery"
	"github.com/oneshotleague/formrelay/internal/handler"
	"github.com/oneshotleague/formrelay/middlewares"
	"github.com/oneshotleague/formrelay/pkg/logger"
	"github.com/oneshotleague/formrelay/pkg/mailer"
	"github.com/oneshotleague/formrelay/pkg/mailer/resend"
	"github.com/oneshotleague/formrelay/pkg/mailer/smtp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())

	deliverer, err := newDeliverer(cfg, log)
	if err != nil {
		return err
	}

	service, err := handler.NewI18n()
	if err != nil {
		return err
	}

	h := handler.New(log, deliverer, service)

	routerOpts := []handler.RouterOption{
		handler.WithSubmitMiddleware(middlewares.RateLimit(middlewares.WithRateLimit(
			rate.Limit(float64(cfg.RateLimitPerMinute)/60.0),
			cfg.RateLimitPerMinute,
		))),
	}
	if len(cfg.AllowedOrigins) > 0 {
		routerOpts = append(routerOpts, handler.WithCORSOptions(
			middlewares.WithAllowOrigins(cfg.AllowedOrigins...),
		))
	}
	router := h.Router(routerOpts...)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.String("delivery_driver", cfg.DeliveryDriver),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newDeliverer builds the delivery strategy selected by configuration.
// One strategy per deployment; never branched at request time.
func newDeliverer(cfg *config.Config, log *slog.Logger) (delivery.Deliverer, error) {
	switch cfg.DeliveryDriver {
	case config.DriverSMTP:
		m := mailer.New(smtp.New(cfg.SMTP), mailer.NewRenderer(delivery.TemplatesFS()), cfg.Mailer)
		return delivery.NewMail(m, cfg.RecipientEmail)
	case config.DriverResend:
		m := mailer.New(resend.New(cfg.Resend), mailer.NewRenderer(delivery.TemplatesFS()), cfg.Mailer)
		return delivery.NewMail(m, cfg.RecipientEmail)
	case config.DriverWebhook:
		return delivery.NewWebhook(cfg.WebhookURL, nil)
	case config.DriverLog:
		return delivery.NewLog(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown delivery driver %q", config.ErrConfiguration, cfg.DeliveryDriver)
	}
}
