package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/feedback"
)

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler { return &FeedbackHandler{} }

type extractRequest struct {
	Text string `json:"text" validate:"max=20000"`
	Mode string `json:"mode" validate:"required"`
}

type extractResponse struct {
	Mode    string   `json:"mode"`
	Bullets []string `json:"bullets"`
}

// Extract picks keyword sentences out of free-text interview feedback.
// @Summary  Extract feedback bullets
// @Tags     feedback
// @Accept   json
// @Produce  json
// @Param    input body extractRequest true "feedback text and mode (strength|improvement)"
// @Security CookieAuth
// @Success  200 {object} extractResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /feedback/extract [post]
func (h *FeedbackHandler) Extract(c *fiber.Ctx) error {
	var req extractRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, validationMessage(err))
	}
	mode, ok := feedback.ParseMode(req.Mode)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "mode must be strength or improvement")
	}
	bullets := feedback.Extract(req.Text, mode)
	if bullets == nil {
		bullets = []string{}
	}
	return presenter.JSON(c, http.StatusOK, extractResponse{Mode: string(mode), Bullets: bullets})
}
