package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/remote"
	"github.com/artem13815/smarthire-admin/pkg/security/jwt"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

var validate = validator.New()

// validationMessage names the first failing field.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Sprintf("validation error: %s - %s", ve[0].Field(), ve[0].Tag())
	}
	return "validation error: invalid request"
}

// confirmDialog is the destructive-action prompt rendered over a list.
type confirmDialog struct {
	Title   string
	Message string
	Action  string
	Cancel  string
	Confirm string
}

func deleteDialog(title, message, action, cancel string) *confirmDialog {
	return &confirmDialog{Title: title, Message: message, Action: action, Cancel: cancel, Confirm: "Delete"}
}

// current returns the session attached by the guard. Routes using it are
// always mounted behind the guard.
func current(c *fiber.Ctx) session.Session {
	sess, _ := jwt.SessionFrom(c)
	return sess
}

// patchOrReload applies fn to a ready cached list, or loads the list fresh
// when there is nothing usable to patch.
func patchOrReload[T any](v listview.View[T], key string, fn func([]T) []T, reload func() remote.Resource[[]T]) remote.Resource[[]T] {
	if res, ok := v.Get(key); ok && res.IsReady() {
		return v.Patch(key, fn)
	}
	return reload()
}

// cachedOrLoad returns the cached list, loading it when absent.
func cachedOrLoad[T any](v listview.View[T], key string, load func() remote.Resource[[]T]) remote.Resource[[]T] {
	if res, ok := v.Get(key); ok {
		return res
	}
	return load()
}
