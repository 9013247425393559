package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/audit"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/jobs"
	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/remote"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

const typesPath = "/job-type"

// JobTypesHandler serves the job type list with its inline add form and
// edit dialog. It shares the "job-types" view with JobPostingsHandler.
type JobTypesHandler struct {
	uc    jobs.UseCase
	types listview.View[jobs.JobType]
	audit audit.UseCase
}

func NewJobTypesHandler(uc jobs.UseCase, views *listview.Cache, audit audit.UseCase) *JobTypesHandler {
	return &JobTypesHandler{uc: uc, types: listview.NewView[jobs.JobType](views, "job-types"), audit: audit}
}

type typeModal struct {
	Action  string
	Editing bool
	Draft   jobs.TypeDraft
	Error   string
}

type typesPage struct {
	presenter.Page
	List     remote.Resource[[]jobs.JobType]
	NewName  string
	AddError string
	Modal    *typeModal
	Confirm  *confirmDialog
}

func (h *JobTypesHandler) load(c *fiber.Ctx, sess session.Session) remote.Resource[[]jobs.JobType] {
	return h.types.Load(c.Context(), sess.Key(),
		func(ctx context.Context) ([]jobs.JobType, error) {
			return h.uc.Types(ctx, sess.AccessToken)
		},
		func(err error) string {
			log.Printf("job types: %v", err)
			return backend.Describe(err, "Failed to load job types")
		})
}

func (h *JobTypesHandler) cached(c *fiber.Ctx, sess session.Session) remote.Resource[[]jobs.JobType] {
	return cachedOrLoad(h.types, sess.Key(), func() remote.Resource[[]jobs.JobType] { return h.load(c, sess) })
}

func (h *JobTypesHandler) page(c *fiber.Ctx, list remote.Resource[[]jobs.JobType]) typesPage {
	return typesPage{Page: presenter.NewPage(c, "Job Types"), List: list}
}

func typePath(id string) string { return typesPath + "/" + url.PathEscape(id) }

// List always fetches the types fresh.
// @Summary  Job types page
// @Tags     pages
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   /job-type [get]
func (h *JobTypesHandler) List(c *fiber.Ctx) error {
	return presenter.Render(c, http.StatusOK, "job_type", h.page(c, h.load(c, current(c))))
}

// New opens an empty create dialog.
func (h *JobTypesHandler) New(c *fiber.Ctx) error {
	page := h.page(c, h.cached(c, current(c)))
	page.Modal = &typeModal{Action: typesPath}
	return presenter.Render(c, http.StatusOK, "job_type", page)
}

// Edit opens the dialog seeded from the row.
func (h *JobTypesHandler) Edit(c *fiber.Ctx) error {
	sess := current(c)
	id := c.Params("id")
	list := h.cached(c, sess)
	row, ok := listview.Find(list.Data, jobs.TypeByID(id))
	if !ok {
		list = h.load(c, sess)
		if row, ok = listview.Find(list.Data, jobs.TypeByID(id)); !ok {
			page := h.page(c, list)
			page.Alert = "Job type not found"
			return presenter.Render(c, http.StatusNotFound, "job_type", page)
		}
	}
	page := h.page(c, list)
	page.Modal = &typeModal{Action: typePath(id), Editing: true, Draft: jobs.TypeDraft{ID: row.ID, Name: row.Name}}
	return presenter.Render(c, http.StatusOK, "job_type", page)
}

// Create handles both the inline add form and the create dialog. A created
// type without an id in the answer triggers a re-fetch of the list.
// @Summary  Create job type
// @Tags     pages
// @Accept   x-www-form-urlencoded
// @Produce  html
// @Param    name formData string true "job type name"
// @Success  200 {string} string "HTML page"
// @Router   /job-type [post]
func (h *JobTypesHandler) Create(c *fiber.Ctx) error {
	sess := current(c)
	var draft jobs.TypeDraft
	if err := c.BodyParser(&draft); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid form")
	}
	draft.ID = ""

	if err := validate.Struct(draft); err != nil || !draft.Ready() {
		return presenter.Render(c, http.StatusUnprocessableEntity, "job_type", h.page(c, h.cached(c, sess)))
	}

	created, ok, err := h.uc.CreateType(c.Context(), sess.AccessToken, draft)
	if err != nil {
		if errors.Is(err, jobs.ErrValidation) {
			return presenter.Render(c, http.StatusUnprocessableEntity, "job_type", h.page(c, h.cached(c, sess)))
		}
		log.Printf("job types: create %q: %v", draft.Name, err)
		page := h.page(c, h.cached(c, sess))
		page.NewName = draft.Name
		page.AddError = backend.Describe(err, "Failed to create job type")
		return presenter.Render(c, http.StatusBadGateway, "job_type", page)
	}

	var list remote.Resource[[]jobs.JobType]
	if ok {
		list = patchOrReload(h.types, sess.Key(),
			func(rows []jobs.JobType) []jobs.JobType { return listview.Prepend(rows, created) },
			func() remote.Resource[[]jobs.JobType] { return h.load(c, sess) })
	} else {
		list = h.load(c, sess)
	}
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionCreate, audit.ResourceJobType, created.ID)
	return presenter.Render(c, http.StatusOK, "job_type", h.page(c, list))
}

// Update handles the edit dialog submit.
func (h *JobTypesHandler) Update(c *fiber.Ctx) error {
	sess := current(c)
	id := c.Params("id")
	var draft jobs.TypeDraft
	if err := c.BodyParser(&draft); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid form")
	}
	draft.ID = id
	modal := &typeModal{Action: typePath(id), Editing: true, Draft: draft}
	render := func(status int) error {
		page := h.page(c, h.cached(c, sess))
		page.Modal = modal
		return presenter.Render(c, status, "job_type", page)
	}

	if err := validate.Struct(draft); err != nil || !draft.Ready() {
		return render(http.StatusUnprocessableEntity)
	}
	updated, err := h.uc.UpdateType(c.Context(), sess.AccessToken, draft)
	if err != nil {
		if errors.Is(err, jobs.ErrValidation) {
			return render(http.StatusUnprocessableEntity)
		}
		log.Printf("job types: update %s: %v", id, err)
		modal.Error = backend.Describe(err, "Failed to update job type")
		return render(http.StatusBadGateway)
	}

	list := patchOrReload(h.types, sess.Key(),
		func(rows []jobs.JobType) []jobs.JobType { return listview.Replace(rows, jobs.TypeByID(id), updated) },
		func() remote.Resource[[]jobs.JobType] { return h.load(c, sess) })
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionUpdate, audit.ResourceJobType, id)
	return presenter.Render(c, http.StatusOK, "job_type", h.page(c, list))
}

// ConfirmDelete renders the delete prompt over the cached list.
func (h *JobTypesHandler) ConfirmDelete(c *fiber.Ctx) error {
	page := h.page(c, h.cached(c, current(c)))
	page.Confirm = deleteDialog("Delete job type", "Delete this job type?",
		typePath(c.Params("id"))+"/delete", typesPath)
	return presenter.Render(c, http.StatusOK, "job_type", page)
}

// Delete removes the type and its row from the cached list.
func (h *JobTypesHandler) Delete(c *fiber.Ctx) error {
	sess := current(c)
	id := c.Params("id")
	if err := h.uc.DeleteType(c.Context(), sess.AccessToken, id); err != nil {
		log.Printf("job types: delete %s: %v", id, err)
		page := h.page(c, h.cached(c, sess))
		page.Alert = backend.Describe(err, "Failed to delete job type")
		return presenter.Render(c, http.StatusBadGateway, "job_type", page)
	}
	list := patchOrReload(h.types, sess.Key(),
		func(rows []jobs.JobType) []jobs.JobType { return listview.Remove(rows, jobs.TypeByID(id)) },
		func() remote.Resource[[]jobs.JobType] { return h.load(c, sess) })
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionDelete, audit.ResourceJobType, id)
	return presenter.Render(c, http.StatusOK, "job_type", h.page(c, list))
}
