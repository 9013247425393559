package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smarthire-admin/api/http/presenter"
	"github.com/artem13815/smarthire-admin/pkg/auth"
	"github.com/artem13815/smarthire-admin/pkg/backend"
	"github.com/artem13815/smarthire-admin/pkg/listview"
	"github.com/artem13815/smarthire-admin/pkg/navigation"
	"github.com/artem13815/smarthire-admin/pkg/security/jwt"
)

const (
	msgMissingCredentials = "Please enter both email and password."
	msgLoginFailed        = "Login failed. Please check your credentials."
	msgLoginUnavailable   = "Something went wrong while logging in."
)

// AuthHandler serves the login page and the logout flow.
type AuthHandler struct {
	useCase      auth.AuthUseCase
	signer       *jwt.CookieSigner
	views        *listview.Cache
	secureCookie bool
}

func NewAuthHandler(useCase auth.AuthUseCase, signer *jwt.CookieSigner, views *listview.Cache, secureCookie bool) *AuthHandler {
	return &AuthHandler{useCase: useCase, signer: signer, views: views, secureCookie: secureCookie}
}

type loginPage struct {
	Brand string
	Email string
	Error string
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return presenter.Render(c, http.StatusOK, "login", loginPage{Brand: navigation.Brand})
}

// Login exchanges the form credentials for a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds auth.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return presenter.Render(c, http.StatusBadRequest, "login", loginPage{Brand: navigation.Brand, Error: msgMissingCredentials})
	}
	creds.Email = strings.TrimSpace(creds.Email)
	page := loginPage{Brand: navigation.Brand, Email: creds.Email}

	if err := validate.Struct(creds); err != nil {
		page.Error = msgMissingCredentials
		return presenter.Render(c, http.StatusBadRequest, "login", page)
	}

	sess, err := h.useCase.Login(c.Context(), creds)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			status, page.Error = http.StatusBadRequest, msgMissingCredentials
		case errors.Is(err, auth.ErrInvalidCredentials):
			page.Error = msgLoginFailed
		case backend.StatusOf(err) != 0:
			page.Error = backend.Message(err, msgLoginFailed)
		default:
			log.Printf("login: %v", err)
			status, page.Error = http.StatusBadGateway, msgLoginUnavailable
		}
		return presenter.Render(c, status, "login", page)
	}

	if err := jwt.IssueCookie(c, h.signer, sess, h.secureCookie); err != nil {
		log.Printf("login: sign cookie: %v", err)
		page.Error = msgLoginUnavailable
		return presenter.Render(c, http.StatusInternalServerError, "login", page)
	}
	return c.Redirect(jwt.LandingPath, http.StatusSeeOther)
}

type logoutPage struct {
	presenter.Page
	Confirm *confirmDialog
}

// ConfirmLogout asks before tearing the session down.
func (h *AuthHandler) ConfirmLogout(c *fiber.Ctx) error {
	return presenter.Render(c, http.StatusOK, "logout", logoutPage{
		Page: presenter.NewPage(c, "Logout"),
		Confirm: &confirmDialog{
			Title:   "Logout",
			Message: "Are you sure you want to log out?",
			Action:  "/logout",
			Cancel:  jwt.LandingPath,
			Confirm: "Logout",
		},
	})
}

// Logout deletes the session, drops its cached views and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := current(c)
	if err := h.useCase.Logout(c.Context(), sess.ID); err != nil {
		log.Printf("logout: %v", err)
	}
	h.views.Drop(sess.Key())
	jwt.ExpireCookie(c)
	return c.Redirect(jwt.LoginPath, http.StatusSeeOther)
}
