// Package router assembles the gin engine: templates, static assets,
// public auth routes and the authenticated screen group.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trade_admin/internal/feature/auth"
	"trade_admin/internal/platform/http/handler"
	"trade_admin/internal/platform/middleware"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/web"
)

// Registrar is anything that mounts its own routes; every screen
// satisfies it.
type Registrar interface {
	Register(gin.IRoutes)
}

// New builds the engine. All screens go behind the session guard; login
// and the health probe stay public.
func New(authHandler *auth.Handler, sessions *session.Manager, screens ...Registrar) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.StaticFS())

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	authHandler.Register(r)

	guarded := r.Group("/", sessions.Required())
	{
		guarded.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/users")
		})
		for _, s := range screens {
			s.Register(guarded)
		}
	}

	return r
}
