package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/application"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/stats"
)

const recentApplications = 5

type DashboardHandler struct {
	stats stats.UseCase
	apps  application.UseCase
}

func NewDashboardHandler(stats stats.UseCase, apps application.UseCase) *DashboardHandler {
	return &DashboardHandler{stats: stats, apps: apps}
}

type dashboardPage struct {
	presenter.Page
	Stats  stats.Overview
	Recent []application.Application
}

// Show renders the KPI cards and the recent applications feed. Both calls
// run in parallel; a failing feed only leaves the table empty.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	sess := current(c)
	page := dashboardPage{Page: presenter.NewPage(c, "Dashboard")}

	var g errgroup.Group
	g.Go(func() error {
		ov, err := h.stats.Overview(c.Context(), sess.AccessToken)
		if err != nil {
			log.Printf("dashboard: stats: %v", err)
			page.Alert = backend.Message(err, "Failed to load stats")
			return nil
		}
		page.Stats = ov
		return nil
	})
	g.Go(func() error {
		recent, err := h.apps.Recent(c.Context(), sess.AccessToken, recentApplications, 0)
		if err != nil {
			log.Printf("dashboard: recent applications: %v", err)
			return nil
		}
		page.Recent = recent
		return nil
	})
	_ = g.Wait()

	return presenter.Render(c, http.StatusOK, "dashboard", page)
}
