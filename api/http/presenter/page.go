package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/pkg/navigation"
	"github.com/artem13815/smarthire-admin/pkg/security/jwt"
	"github.com/artem13815/smarthire-admin/pkg/session"
)

// Page carries what the shell template needs on every console page.
type Page struct {
	Title string
	Brand string
	Path  string
	Nav   []navigation.Item
	User  session.User
	// Alert is a failure banner; Notice a neutral one.
	Alert  string
	Notice string
}

// NewPage builds the shell data for the current request.
func NewPage(c *fiber.Ctx, title string) Page {
	p := Page{
		Title: title,
		Brand: navigation.Brand,
		Path:  c.Path(),
		Nav:   navigation.Items(c.Path()),
	}
	if sess, ok := jwt.SessionFrom(c); ok {
		p.User = sess.User
	}
	return p
}

// Render writes an HTML view with status.
func Render(c *fiber.Ctx, status int, view string, data any) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).Render(view, data)
}
