package http

import (
	"errors"
	"log"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/artem13815/smarthire-admin/api/http/handlers"
	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/api/http/views"
	"github.com/artem13815/smarthire-admin/pkg/navigation"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Dashboard    *handlers.DashboardHandler
	Applications *handlers.ApplicationsHandler
	Candidates   *handlers.CandidatesHandler
	JobPostings  *handlers.JobPostingsHandler
	JobTypes     *handlers.JobTypesHandler
	Feedback     *handlers.FeedbackHandler
	Audit        *handlers.AuditHandler
}

var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"style-src 'self'",
	"img-src 'self' data:",
	"script-src 'self'",
	"connect-src 'self'",
	"frame-ancestors 'none'",
}, "; ")

// NewApp builds the console's fiber app. Route params and form values end up
// in the view cache and the session store, so they must not alias fasthttp's
// reused request buffers.
func NewApp(writeTimeout time.Duration) *fiber.App {
	return fiber.New(fiber.Config{
		Views:        views.New(),
		ErrorHandler: ErrorHandler,
		Immutable:    true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
	})
}

// SecurityHeaders sets the headers every console response carries.
func SecurityHeaders(c *fiber.Ctx) error {
	c.Set("Content-Security-Policy", contentSecurityPolicy)
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set(fiber.HeaderReferrerPolicy, "same-origin")
	return c.Next()
}

// Register wires all HTTP routes onto given Fiber app. guard protects the
// console pages with redirects, apiAuth the JSON endpoints with 401s.
func Register(app *fiber.App, h Handlers, guard, apiAuth fiber.Handler) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   nethttp.FS(views.Static()),
		MaxAge: 3600,
	}))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/feedback/extract", apiAuth, h.Feedback.Extract)
	v1.Get("/audit", apiAuth, h.Audit.List)

	// Login; the guard bounces signed-in admins to the dashboard.
	app.Get("/", guard, h.Auth.LoginPage)
	app.Post("/", guard, h.Auth.Login)

	app.Get("/logout", guard, h.Auth.ConfirmLogout)
	app.Post("/logout", guard, h.Auth.Logout)

	app.Get("/dashboard", guard, h.Dashboard.Show)

	app.Get("/applications", guard, h.Applications.List)
	app.Get("/applications/export.xlsx", guard, h.Applications.Export)
	app.Get("/applications/:cv/report", guard, h.Applications.Report)
	app.Get("/applications/:cv/delete", guard, h.Applications.ConfirmDelete)
	app.Post("/applications/:cv/delete", guard, h.Applications.Delete)

	app.Get("/users", guard, h.Candidates.List)
	app.Get("/users/:id/delete", guard, h.Candidates.ConfirmDelete)
	app.Post("/users/:id/delete", guard, h.Candidates.Delete)

	app.Get("/job-postings", guard, h.JobPostings.List)
	app.Post("/job-postings", guard, h.JobPostings.Create)
	app.Get("/job-postings/new", guard, h.JobPostings.New)
	app.Get("/job-postings/:id/edit", guard, h.JobPostings.Edit)
	app.Post("/job-postings/:id", guard, h.JobPostings.Update)
	app.Get("/job-postings/:id/delete", guard, h.JobPostings.ConfirmDelete)
	app.Post("/job-postings/:id/delete", guard, h.JobPostings.Delete)

	app.Get("/job-type", guard, h.JobTypes.List)
	app.Post("/job-type", guard, h.JobTypes.Create)
	app.Get("/job-type/new", guard, h.JobTypes.New)
	app.Get("/job-type/:id/edit", guard, h.JobTypes.Edit)
	app.Post("/job-type/:id", guard, h.JobTypes.Update)
	app.Get("/job-type/:id/delete", guard, h.JobTypes.ConfirmDelete)
	app.Post("/job-type/:id/delete", guard, h.JobTypes.Delete)
}

type errorPage struct {
	Status  int
	Message string
	Brand   string
}

// ErrorHandler renders unhandled errors: JSON under /api, the error page
// everywhere else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, msg = fe.Code, fe.Message
	} else {
		log.Printf("http: %s %s: %v", c.Method(), c.Path(), err)
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return presenter.Error(c, code, msg)
	}
	if rerr := presenter.Render(c, code, "error", errorPage{Status: code, Message: msg, Brand: navigation.Brand}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
