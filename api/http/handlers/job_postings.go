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

const postingsPath = "/job-postings"

// JobPostingsHandler serves the postings list and its create/edit dialog.
// Job types are cached next to the postings because the dialog and the
// type-name join both need them.
type JobPostingsHandler struct {
	uc       jobs.UseCase
	postings listview.View[jobs.Posting]
	types    listview.View[jobs.JobType]
	audit    audit.UseCase
}

func NewJobPostingsHandler(uc jobs.UseCase, views *listview.Cache, audit audit.UseCase) *JobPostingsHandler {
	return &JobPostingsHandler{
		uc:       uc,
		postings: listview.NewView[jobs.Posting](views, "job-postings"),
		types:    listview.NewView[jobs.JobType](views, "job-types"),
		audit:    audit,
	}
}

type postingModal struct {
	Action  string
	Editing bool
	Draft   jobs.PostingDraft
	Types   []jobs.JobType
	Error   string
}

type postingsPage struct {
	presenter.Page
	List    remote.Resource[[]jobs.Posting]
	Modal   *postingModal
	Confirm *confirmDialog
}

func (h *JobPostingsHandler) load(c *fiber.Ctx, sess session.Session) remote.Resource[[]jobs.Posting] {
	return h.postings.Load(c.Context(), sess.Key(),
		func(ctx context.Context) ([]jobs.Posting, error) {
			board, err := h.uc.Board(ctx, sess.AccessToken)
			if err != nil {
				return nil, err
			}
			h.types.Patch(sess.Key(), func([]jobs.JobType) []jobs.JobType { return board.Types })
			return board.Postings, nil
		},
		func(err error) string {
			log.Printf("job postings: %v", err)
			return jobs.LoadMessage(err)
		})
}

func (h *JobPostingsHandler) cached(c *fiber.Ctx, sess session.Session) remote.Resource[[]jobs.Posting] {
	return cachedOrLoad(h.postings, sess.Key(), func() remote.Resource[[]jobs.Posting] { return h.load(c, sess) })
}

// typeList returns the cached job types, fetching them when missing.
// A failure yields an empty list; the dialog then offers no types.
func (h *JobPostingsHandler) typeList(c *fiber.Ctx, sess session.Session) []jobs.JobType {
	if res, ok := h.types.Get(sess.Key()); ok && res.IsReady() {
		return res.Data
	}
	types, err := h.uc.Types(c.Context(), sess.AccessToken)
	if err != nil {
		log.Printf("job postings: types: %v", err)
		return nil
	}
	h.types.Patch(sess.Key(), func([]jobs.JobType) []jobs.JobType { return types })
	return types
}

func (h *JobPostingsHandler) page(c *fiber.Ctx, list remote.Resource[[]jobs.Posting]) postingsPage {
	return postingsPage{Page: presenter.NewPage(c, "Job Postings"), List: list}
}

func postingPath(id string) string { return postingsPath + "/" + url.PathEscape(id) }

// List always fetches types and positions fresh.
// @Summary  Job postings page
// @Tags     pages
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   /job-postings [get]
func (h *JobPostingsHandler) List(c *fiber.Ctx) error {
	return presenter.Render(c, http.StatusOK, "job_postings", h.page(c, h.load(c, current(c))))
}

// New opens an empty create dialog.
func (h *JobPostingsHandler) New(c *fiber.Ctx) error {
	sess := current(c)
	page := h.page(c, h.cached(c, sess))
	page.Modal = &postingModal{Action: postingsPath, Types: h.typeList(c, sess)}
	return presenter.Render(c, http.StatusOK, "job_postings", page)
}

// Edit opens the dialog seeded from the row. A row without a type id gets
// one inferred from its type name.
func (h *JobPostingsHandler) Edit(c *fiber.Ctx) error {
	sess := current(c)
	id := c.Params("id")
	list := h.cached(c, sess)
	row, ok := listview.Find(list.Data, jobs.PostingByID(id))
	if !ok {
		list = h.load(c, sess)
		if row, ok = listview.Find(list.Data, jobs.PostingByID(id)); !ok {
			page := h.page(c, list)
			page.Alert = "Job post not found"
			return presenter.Render(c, http.StatusNotFound, "job_postings", page)
		}
	}

	types := h.typeList(c, sess)
	draft := jobs.PostingDraft{ID: row.ID, Position: row.Position, TypeID: row.TypeID, TypeName: row.TypeName}
	if draft.TypeID == "" {
		draft.TypeID = jobs.NewTypeIndex(types).IDForName(row.TypeName)
	}
	page := h.page(c, list)
	page.Modal = &postingModal{Action: postingPath(id), Editing: true, Draft: draft, Types: types}
	return presenter.Render(c, http.StatusOK, "job_postings", page)
}

// Create handles the create dialog submit.
// @Summary  Create job posting
// @Tags     pages
// @Accept   x-www-form-urlencoded
// @Produce  html
// @Param    position formData string true "position name"
// @Param    type_id  formData string true "job type id"
// @Success  200 {string} string "HTML page"
// @Router   /job-postings [post]
func (h *JobPostingsHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "")
}

// Update handles the edit dialog submit.
func (h *JobPostingsHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"))
}

func (h *JobPostingsHandler) save(c *fiber.Ctx, id string) error {
	sess := current(c)
	editing := id != ""
	var draft jobs.PostingDraft
	if err := c.BodyParser(&draft); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid form")
	}
	draft = draft.Trimmed()
	if editing {
		draft.ID = id
	}

	types := h.typeList(c, sess)
	modal := &postingModal{Action: postingsPath, Editing: editing, Draft: draft, Types: types}
	if editing {
		modal.Action = postingPath(id)
	}
	render := func(status int) error {
		page := h.page(c, h.cached(c, sess))
		page.Modal = modal
		return presenter.Render(c, status, "job_postings", page)
	}

	// incomplete drafts never reach the backend
	if err := validate.Struct(draft); err != nil || !draft.Ready() {
		return render(http.StatusUnprocessableEntity)
	}

	var (
		saved jobs.Posting
		err   error
	)
	if editing {
		saved, err = h.uc.UpdatePosting(c.Context(), sess.AccessToken, draft, types)
	} else {
		saved, err = h.uc.CreatePosting(c.Context(), sess.AccessToken, draft, types)
	}
	if err != nil {
		if errors.Is(err, jobs.ErrValidation) {
			return render(http.StatusUnprocessableEntity)
		}
		log.Printf("job postings: save %q: %v", draft.Position, err)
		modal.Error = postingSaveMessage(err, editing)
		return render(http.StatusBadGateway)
	}

	action := audit.ActionCreate
	patch := func(rows []jobs.Posting) []jobs.Posting { return listview.Prepend(rows, saved) }
	if editing {
		action = audit.ActionUpdate
		patch = func(rows []jobs.Posting) []jobs.Posting {
			return listview.Replace(rows, jobs.PostingByID(id), saved)
		}
	}
	list := patchOrReload(h.postings, sess.Key(), patch,
		func() remote.Resource[[]jobs.Posting] { return h.load(c, sess) })
	h.audit.Record(c.Context(), sess.User.Email, action, audit.ResourcePosting, saved.ID)
	return presenter.Render(c, http.StatusOK, "job_postings", h.page(c, list))
}

func postingSaveMessage(err error, editing bool) string {
	if backend.StatusOf(err) == 0 {
		return "Something went wrong while saving the job posting."
	}
	if editing {
		return backend.Message(err, "Failed to update job post")
	}
	return backend.Message(err, "Failed to create job position")
}

// ConfirmDelete renders the delete prompt over the cached list.
func (h *JobPostingsHandler) ConfirmDelete(c *fiber.Ctx) error {
	page := h.page(c, h.cached(c, current(c)))
	page.Confirm = deleteDialog("Delete job post", "Delete this job post?",
		postingPath(c.Params("id"))+"/delete", postingsPath)
	return presenter.Render(c, http.StatusOK, "job_postings", page)
}

// Delete removes the posting and its row from the cached list.
func (h *JobPostingsHandler) Delete(c *fiber.Ctx) error {
	sess := current(c)
	id := c.Params("id")
	if err := h.uc.DeletePosting(c.Context(), sess.AccessToken, id); err != nil {
		log.Printf("job postings: delete %s: %v", id, err)
		page := h.page(c, h.cached(c, sess))
		page.Alert = backend.Message(err, "Failed to delete job post")
		return presenter.Render(c, http.StatusBadGateway, "job_postings", page)
	}
	list := patchOrReload(h.postings, sess.Key(),
		func(rows []jobs.Posting) []jobs.Posting { return listview.Remove(rows, jobs.PostingByID(id)) },
		func() remote.Resource[[]jobs.Posting] { return h.load(c, sess) })
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionDelete, audit.ResourcePosting, id)
	return presenter.Render(c, http.StatusOK, "job_postings", h.page(c, list))
}
