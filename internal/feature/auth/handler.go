// Package auth implements the login and logout endpoints. Credentials are
// checked by the backend; the dashboard only stores the returned bearer
// token in the session cookie.
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trade_admin/internal/backend"
	"trade_admin/internal/platform/flash"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

var loginFields = []screen.Field{
	{Name: "email", Label: "Email", Kind: screen.KindText, Required: true, Email: true},
	{Name: "password", Label: "Password", Kind: screen.KindPassword, Required: true},
}

// Handler serves the login screen and the logout action.
type Handler struct {
	api      *backend.Client
	sessions *session.Manager
}

// NewHandler creates the auth handler.
func NewHandler(api *backend.Client, sessions *session.Manager) *Handler {
	return &Handler{api: api, sessions: sessions}
}

// Register mounts the auth routes. Login lives outside the authenticated
// group; logout requires nothing but clears whatever session exists.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", web.LoginPage{
		Page: web.Page{Title: "Log In", Flash: flash.Take(c)},
	})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	values := map[string]string{"email": email, "password": password}

	if errs := screen.Validate(loginFields, values); len(errs) > 0 {
		c.HTML(http.StatusBadRequest, "login.tmpl", web.LoginPage{
			Page:   web.Page{Title: "Log In"},
			Email:  email,
			Errors: errs,
		})
		return
	}

	token, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		msg := screen.Notice(err)
		if errors.Is(err, backend.ErrUnauthorized) {
			msg = "Invalid email or password"
		}
		slog.Warn("login rejected", "error", err)
		c.HTML(http.StatusOK, "login.tmpl", web.LoginPage{
			Page:  web.Page{Title: "Log In", Flash: &flash.Message{Message: msg, Severity: flash.SeverityError}},
			Email: email,
		})
		return
	}

	if err := h.sessions.Issue(c, token); err != nil {
		slog.Error("session issue failed", "error", err)
		c.HTML(http.StatusInternalServerError, "login.tmpl", web.LoginPage{
			Page:  web.Page{Title: "Log In", Flash: &flash.Message{Message: "An error occurred", Severity: flash.SeverityError}},
			Email: email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
