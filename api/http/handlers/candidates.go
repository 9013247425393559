package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/audit"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/candidate"
	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/remote"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

const candidatesPerPage = 20

// CandidatesHandler serves the paginated Users page. The cached view holds
// exactly one candidate.Page: the one last shown to the session.
type CandidatesHandler struct {
	uc    candidate.UseCase
	pages listview.View[candidate.Page]
	audit audit.UseCase
}

func NewCandidatesHandler(uc candidate.UseCase, views *listview.Cache, audit audit.UseCase) *CandidatesHandler {
	return &CandidatesHandler{uc: uc, pages: listview.NewView[candidate.Page](views, "users"), audit: audit}
}

type usersPage struct {
	presenter.Page
	List    remote.Resource[[]candidate.Candidate]
	PageNum int
	Total   int
	HasPrev bool
	HasNext bool
	Confirm *confirmDialog
}

func (h *CandidatesHandler) load(c *fiber.Ctx, sess session.Session, pageNum int) remote.Resource[[]candidate.Page] {
	return h.pages.Load(c.Context(), sess.Key(),
		func(ctx context.Context) ([]candidate.Page, error) {
			p, err := h.uc.List(ctx, sess.AccessToken, candidatesPerPage, (pageNum-1)*candidatesPerPage)
			if err != nil {
				return nil, err
			}
			return []candidate.Page{p}, nil
		},
		func(err error) string {
			log.Printf("users: %v", err)
			return backend.Message(err, "Failed to fetch candidates")
		})
}

// cached returns the cached page when it is the requested one.
func (h *CandidatesHandler) cached(c *fiber.Ctx, sess session.Session, pageNum int) remote.Resource[[]candidate.Page] {
	if res, ok := h.pages.Get(sess.Key()); ok {
		if !res.IsReady() || (len(res.Data) == 1 && res.Data[0].Offset == (pageNum-1)*candidatesPerPage) {
			return res
		}
	}
	return h.load(c, sess, pageNum)
}

func (h *CandidatesHandler) page(c *fiber.Ctx, res remote.Resource[[]candidate.Page], pageNum int) usersPage {
	page := usersPage{
		Page:    presenter.NewPage(c, "Users"),
		List:    remote.Resource[[]candidate.Candidate]{Status: res.Status, Err: res.Err},
		PageNum: pageNum,
		Total:   -1,
		HasPrev: pageNum > 1,
	}
	if len(res.Data) > 0 {
		p := res.Data[0]
		page.List.Data = p.Items
		page.Total = p.Total
		page.HasNext = p.HasNext()
	}
	return page
}

// List renders one page of candidates, always fetched fresh.
// @Summary  Users list page
// @Tags     pages
// @Produce  html
// @Param    page query int false "1-based page number"
// @Success  200 {string} string "HTML page"
// @Router   /users [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	pageNum := parsePage(c)
	return presenter.Render(c, http.StatusOK, "users", h.page(c, h.load(c, current(c), pageNum), pageNum))
}

// ConfirmDelete renders the delete prompt over the current page.
func (h *CandidatesHandler) ConfirmDelete(c *fiber.Ctx) error {
	pageNum := parsePage(c)
	page := h.page(c, h.cached(c, current(c), pageNum), pageNum)
	page.Confirm = deleteDialog("Delete candidate",
		"Delete this candidate?",
		fmt.Sprintf("/users/%s/delete?page=%d", c.Params("id"), pageNum),
		fmt.Sprintf("/users?page=%d", pageNum))
	return presenter.Render(c, http.StatusOK, "users", page)
}

// Delete removes the candidate's account and its row from the cached page.
func (h *CandidatesHandler) Delete(c *fiber.Ctx) error {
	sess := current(c)
	pageNum := parsePage(c)
	id := c.Params("id")

	if err := h.uc.Delete(c.Context(), sess.AccessToken, id); err != nil {
		log.Printf("users: delete %s: %v", id, err)
		page := h.page(c, h.cached(c, sess, pageNum), pageNum)
		page.Alert = backend.Message(err, "Failed to delete candidate")
		return presenter.Render(c, http.StatusBadGateway, "users", page)
	}

	res := patchOrReload(h.pages, sess.Key(),
		func(pages []candidate.Page) []candidate.Page {
			if len(pages) == 0 {
				return pages
			}
			p := pages[0]
			before := len(p.Items)
			p.Items = listview.Remove(p.Items, candidate.ByID(id))
			if p.Total > 0 && len(p.Items) < before {
				p.Total--
			}
			return []candidate.Page{p}
		},
		func() remote.Resource[[]candidate.Page] { return h.load(c, sess, pageNum) })
	h.audit.Record(c.Context(), sess.User.Email, audit.ActionDelete, audit.ResourceCandidate, id)
	return presenter.Render(c, http.StatusOK, "users", h.page(c, res, pageNum))
}
