package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"

	_ "github.com/artem13815/smarthire-admin/docs"

	"github.com/artem13815/smarthire-admin/api/http"
	"github.com/artem13815/smarthire-admin/api/http/handlers"
	"github.com/artem13815/smarthire-admin/pkg/application"
	"github.com/artem13815/smarthire-admin/pkg/audit"
	"github.com/artem13815/smarthire-admin/pkg/auth"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/candidate"
	"github.com/artem13815/smarthire-admin/pkg/config"
	"github.com/artem13815/smarthire-admin/pkg/health"
	"github.com/artem13815/smarthire-admin/pkg/health/checkers"
	"github.com/artem13815/smarthire-admin/pkg/jobs"
	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/report"
	pgrepo "github.com/artem13815/smarthire-admin/pkg/repository/postgres"
	"github.com/artem13815/smarthire-admin/pkg/security/jwt"
	"github.com/artem13815/smarthire-admin/pkg/session"
	"github.com/artem13815/smarthire-admin/pkg/stats"
	"github.com/artem13815/smarthire-admin/pkg/storage/postgres"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin console",
	Long:  `Start the HTTP server that renders the admin console and proxies its actions to the SmartHire API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := backend.New(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second)
	readiness := []health.Checker{checkers.NewBackendChecker(api)}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	viewCache := listview.NewCache(ttl)
	sweeper := session.NewSweeper(time.Duration(cfg.SweepIntervalMinutes) * time.Minute)
	sweeper.Add("views", func() int {
		n := viewCache.Sweep()
		log.Printf("sweep views: %d cached lists left", viewCache.Len())
		return n
	})

	// Sessions: Redis when configured, memory otherwise.
	var store session.Store
	if cfg.RedisURL != "" {
		rdb, err := session.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
	} else {
		mem := session.NewMemoryStore()
		sweeper.Add("sessions", mem.Sweep)
		store = mem
	}

	// Audit trail: PostgreSQL when configured, log only otherwise.
	var auditRepo audit.Repository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		auditRepo = pgrepo.NewAuditRepository(pool)
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
	}
	trail := audit.NewService(auditRepo)

	signer, err := jwt.NewCookieSigner(cfg.SessionSecret, cfg.SessionIssuer, ttl)
	if err != nil {
		return err
	}

	jobsUC := jobs.NewService(api)
	appsUC := application.NewService(api)

	h := http.Handlers{
		Auth:         handlers.NewAuthHandler(auth.NewAuthService(api, store, ttl), signer, viewCache, cfg.CookieSecure),
		Health:       handlers.NewHealthHandler(health.NewService(readiness...)),
		Dashboard:    handlers.NewDashboardHandler(stats.NewService(api), appsUC),
		Applications: handlers.NewApplicationsHandler(appsUC, report.NewService(api), viewCache, trail),
		Candidates:   handlers.NewCandidatesHandler(candidate.NewService(api), viewCache, trail),
		JobPostings:  handlers.NewJobPostingsHandler(jobsUC, viewCache, trail),
		JobTypes:     handlers.NewJobTypesHandler(jobsUC, viewCache, trail),
		Feedback:     handlers.NewFeedbackHandler(),
		Audit:        handlers.NewAuditHandler(trail),
	}

	app := http.NewApp(2 * time.Duration(cfg.APITimeoutSeconds) * time.Second)
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(http.SecurityHeaders)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	http.Register(app, h, jwt.NewSessionGuard(signer, store), jwt.NewAPIAuthMiddleware(signer, store))

	if err := sweeper.Start(); err != nil {
		return fmt.Errorf("start sweeper: %w", err)
	}
	defer sweeper.Stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s (api %s)", cfg.Port, cfg.APIBaseURL)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
