package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Required returns a gin middleware that gates every screen behind a valid
// session. Requests without one are redirected to the login page and never
// reach a handler, so no backend call is issued for them.
func (m *Manager) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := m.Token(c)
		if err != nil {
			// A present-but-invalid cookie is cleared so the browser does
			// not keep resending it.
			m.Clear(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextToken, tok)
		c.Next()
	}
}

// TokenFromContext returns the backend token stored by Required.
func TokenFromContext(c *gin.Context) string {
	return c.GetString(ContextToken)
}
