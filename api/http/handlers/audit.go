package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/audit"
)

type AuditHandler struct {
	uc audit.UseCase
}

func NewAuditHandler(uc audit.UseCase) *AuditHandler { return &AuditHandler{uc: uc} }

// List returns recent admin mutations, newest first.
// @Summary  Audit log
// @Tags     audit
// @Produce  json
// @Param    limit  query int false "page size (1..200)"
// @Param    offset query int false "offset"
// @Security CookieAuth
// @Success  200 {object} map[string]any
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	entries, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		log.Printf("audit: list: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to load audit log")
	}
	return presenter.List(c, entries, limit, offset)
}
