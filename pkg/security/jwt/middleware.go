package jwt

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/pkg/session"
)

const (
	CookieName  = "smarthire_session"
	LoginPath   = "/"
	LandingPath = "/dashboard"

	localsSession = "session"
)

// NewSessionGuard protects page routes. Without a live session every route
// except the login page redirects to it; with one, the login page redirects
// to the landing page. The handler chain never runs for a rejected request.
func NewSessionGuard(signer *CookieSigner, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := lookup(c, signer, store)
		onLogin := c.Path() == LoginPath
		if ok {
			c.Locals(localsSession, sess)
			if onLogin {
				return c.Redirect(LandingPath, http.StatusSeeOther)
			}
			return c.Next()
		}
		if c.Cookies(CookieName) != "" {
			c.ClearCookie(CookieName)
		}
		if onLogin {
			return c.Next()
		}
		return c.Redirect(LoginPath, http.StatusSeeOther)
	}
}

// NewAPIAuthMiddleware is the JSON flavour of the guard: it answers 401
// instead of redirecting.
func NewAPIAuthMiddleware(signer *CookieSigner, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := lookup(c, signer, store)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "not authenticated"})
		}
		c.Locals(localsSession, sess)
		return c.Next()
	}
}

func lookup(c *fiber.Ctx, signer *CookieSigner, store session.Store) (session.Session, bool) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return session.Session{}, false
	}
	id, err := signer.Verify(raw)
	if err != nil {
		return session.Session{}, false
	}
	sess, err := store.Get(c.UserContext(), id)
	if err != nil {
		return session.Session{}, false
	}
	return sess, true
}

// SessionFrom returns the session the guard attached to the request.
func SessionFrom(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(localsSession).(session.Session)
	return sess, ok
}

// IssueCookie signs sess and sets the session cookie.
func IssueCookie(c *fiber.Ctx, signer *CookieSigner, sess session.Session, secure bool) error {
	token, err := signer.Sign(sess.ID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(signer.TTL()),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// ExpireCookie removes the session cookie from the browser.
func ExpireCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
