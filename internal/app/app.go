// Package app wires configuration, storage, domain services and the HTTP
// server together.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/maxpc/boutique/internal/catalog"
	"github.com/maxpc/boutique/internal/contact"
	"github.com/maxpc/boutique/internal/domain/admin"
	"github.com/maxpc/boutique/internal/domain/content"
	"github.com/maxpc/boutique/internal/domain/product"
	"github.com/maxpc/boutique/internal/domain/reservation"
	"github.com/maxpc/boutique/internal/handler"
	"github.com/maxpc/boutique/internal/shop"
	"github.com/maxpc/boutique/internal/storage/postgres"
	"github.com/maxpc/boutique/pkg/health"
	"github.com/maxpc/boutique/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	healthSvc := health.New()
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))

	// The database is optional: without it the catalog falls back to the
	// static file or the built-in defaults, and admin writes answer 503.
	var (
		writer       product.Writer
		contents     content.Repository
		directory    admin.Directory
		reservations *reservation.Service
		sources      []catalog.Source
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "create db pool")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.DatabaseCheck(pool))

		productRepo := postgres.NewProductRepository(pool)
		writer = productRepo
		contents = postgres.NewContentRepository(pool)
		directory = postgres.NewAdminDirectory(pool)
		reservations = reservation.NewService(postgres.NewReservationRepository(pool))
		sources = append(sources, catalog.NewStoreSource(productRepo, cfg.RemoteTimeout))
	} else {
		lg.Warn("no database configured, catalog is read-only")
	}
	if cfg.ProductsFile != "" {
		sources = append(sources, catalog.NewFileSource(cfg.ProductsFile))
	}

	cat := shop.NewCatalog(catalog.NewLoader(lg.Named("catalog"), sources...))
	cat.Reload(ctx)

	sessions := shop.NewManager(cfg.SessionTTL)
	sessions.StartCleanup(ctx, cfg.SessionTTL/2)

	var relay contact.Relay
	if cfg.EmailJS.ServiceID != "" {
		relay = contact.NewEmailJSRelay(
			cfg.EmailJS.Endpoint,
			cfg.EmailJS.ServiceID,
			cfg.EmailJS.TemplateID,
			cfg.EmailJS.PublicKey,
			nil,
		)
	}

	var auth admin.Authenticator
	if cfg.AuthURL != "" {
		auth = admin.NewHTTPAuthenticator(cfg.AuthURL, cfg.AuthAnonKey, nil)
	}
	policy := admin.NewPolicy(cfg.AdminEmails, directory)

	h := handler.NewHandler(
		handler.Config{
			ReservationBaseURL: cfg.ReservationBaseURL,
			OperatorPepper:     []byte(cfg.OperatorPepper),
		},
		cat, sessions, writer, contents, reservations, relay, auth, policy,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	h.Routes(mux)

	instrumented := otelhttp.NewHandler(mux, "boutique-api",
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(instrumented,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins: cfg.CORS.Origins,
				AllowHeaders: []string{"Content-Type", "Authorization", "X-Session-ID"},
				MaxAge:       86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.LogRequests(),
		),
	}

	healthSvc.SetReady(true)

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
