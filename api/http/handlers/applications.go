package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/application"
	"github.com/artem13815/smarthire-admin/pkg/audit"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/export"
	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/remote"
	"github.com/artem13815/smarthire-admin/pkg/report"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ApplicationsHandler serves the applications list, its report dialog,
// deletion and the spreadsheet export.
type ApplicationsHandler struct {
	apps    application.UseCase
	reports report.UseCase
	rows    listview.View[application.Application]
	audit   audit.UseCase
}

func NewApplicationsHandler(apps application.UseCase, reports report.UseCase, views *listview.Cache, audit audit.UseCase) *ApplicationsHandler {
	return &ApplicationsHandler{
		apps:    apps,
		reports: reports,
		rows:    listview.NewView[application.Application](views, "applications"),
		audit:   audit,
	}
}

type reportDialog struct {
	View  report.View
	Error string
}

type applicationsPage struct {
	presenter.Page
	List    remote.Resource[[]application.Application]
	Report  *reportDialog
	Confirm *confirmDialog
}

func (h *ApplicationsHandler) load(c *fiber.Ctx, sess session.Session) remote.Resource[[]application.Application] {
	return h.rows.Load(c.Context(), sess.Key(),
		func(ctx context.Context) ([]application.Application, error) {
			return h.apps.List(ctx, sess.AccessToken)
		},
		func(err error) string {
			log.Printf("applications: %v", err)
			return backend.Message(err, "Failed to fetch applications")
		})
}

func (h *ApplicationsHandler) cached(c *fiber.Ctx, sess session.Session) remote.Resource[[]application.Application] {
	return cachedOrLoad(h.rows, sess.Key(), func() remote.Resource[[]application.Application] { return h.load(c, sess) })
}

func (h *ApplicationsHandler) page(c *fiber.Ctx, list remote.Resource[[]application.Application]) applicationsPage {
	return applicationsPage{Page: presenter.NewPage(c, "Applications"), List: list}
}

func cvParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("cv"), 10, 64)
	return id, err == nil && id > 0
}

func (h *ApplicationsHandler) notFound(c *fiber.Ctx, list remote.Resource[[]application.Application]) error {
	page := h.page(c, list)
	page.Alert = "Application not found"
	return presenter.Render(c, http.StatusNotFound, "applications", page)
}

// List always fetches the list fresh.
// @Summary  Applications list page
// @Tags     pages
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   /applications [get]
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	return presenter.Render(c, http.StatusOK, "applications", h.page(c, h.load(c, current(c))))
}

// Report opens the interview report dialog over the list.
func (h *ApplicationsHandler) Report(c *fiber.Ctx) error {
	sess := current(c)
	list := h.cached(c, sess)
	cvID, ok := cvParam(c)
	if !ok {
		return h.notFound(c, list)
	}
	row, err := application.Find(list.Data, cvID)
	if errors.Is(err, application.ErrNotFound) {
		list = h.load(c, sess)
		if row, err = application.Find(list.Data, cvID); err != nil {
			return h.notFound(c, list)
		}
	}

	dialog := &reportDialog{}
	rep, err := h.reports.Latest(c.Context(), sess.AccessToken, cvID)
	if err != nil {
		log.Printf("applications: report for cv %d: %v", cvID, err)
		dialog.Error = backend.Message(err, "Failed to load interview report")
		rep = nil
	}
	dialog.View = report.BuildView(row, rep)

	page := h.page(c, list)
	page.Title = "Interview Report"
	page.Report = dialog
	return presenter.Render(c, http.StatusOK, "applications", page)
}

func (h *ApplicationsHandler) confirm(cvID int64) *confirmDialog {
	return deleteDialog("Delete application",
		"Are you sure you want to delete this application?",
		fmt.Sprintf("/applications/%d/delete", cvID),
		"/applications")
}

// ConfirmDelete renders the delete prompt over the cached list.
func (h *ApplicationsHandler) ConfirmDelete(c *fiber.Ctx) error {
	sess := current(c)
	list := h.cached(c, sess)
	cvID, ok := cvParam(c)
	if !ok {
		return h.notFound(c, list)
	}
	if list.IsReady() {
		if _, err := application.Find(list.Data, cvID); errors.Is(err, application.ErrNotFound) {
			return h.notFound(c, list)
		}
	}
	page := h.page(c, list)
	page.Confirm = h.confirm(cvID)
	return presenter.Render(c, http.StatusOK, "applications", page)
}

// Delete removes the application and drops only its row from the cached list.
// @Summary  Delete application
// @Tags     pages
// @Produce  html
// @Param    cv path int true "user_cv_id"
// @Success  200 {string} string "HTML page"
// @Failure  502 {string} string "HTML page with alert"
// @Router   /applications/{cv}/delete [post]
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	sess := current(c)
	cvID, ok := cvParam(c)
	if !ok {
		return h.notFound(c, h.cached(c, sess))
	}

	if err := h.apps.Delete(c.Context(), sess.AccessToken, cvID); err != nil {
		log.Printf("applications: delete cv %d: %v", cvID, err)
		page := h.page(c, h.cached(c, sess))
		page.Alert = backend.Message(err, "Failed to delete application")
		return presenter.Render(c, http.StatusBadGateway, "applications", page)
	}

	list := patchOrReload(h.rows, sess.Key(),
		func(rows []application.Application) []application.Application {
			return listview.Remove(rows, application.ByCV(cvID))
		},
		func() remote.Resource[[]application.Application] { return h.load(c, sess) })
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionDelete, audit.ResourceApplication, strconv.FormatInt(cvID, 10))
	return presenter.Render(c, http.StatusOK, "applications", h.page(c, list))
}

// Export streams the applications list as an XLSX workbook.
// @Summary  Export applications
// @Tags     pages
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200 {file} file
// @Failure  502 {object} presenter.ErrorResponse
// @Router   /applications/export.xlsx [get]
func (h *ApplicationsHandler) Export(c *fiber.Ctx) error {
	sess := current(c)
	list, ok := h.rows.Get(sess.Key())
	if !ok || !list.IsReady() {
		list = h.load(c, sess)
	}
	if list.IsFailed() {
		return presenter.Error(c, http.StatusBadGateway, list.Err)
	}
	data, err := export.Applications(list.Data)
	if err != nil {
		log.Printf("applications: export: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to build export")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	return c.Status(http.StatusOK).Send(data)
}
