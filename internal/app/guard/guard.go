package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthState is the slice of the session store the guards consult.
// *session.Store satisfies it. Guards only read; they never mutate the store.
type AuthState interface {
	IsLogged() bool
	IsAdmin() bool
}

// RequireAuthenticated vetoes the navigation and redirects to the login view
// when nobody is logged in. Veto and redirect are one atomic step: an aborted
// request never reaches the view handler.
func RequireAuthenticated(state AuthState, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !state.IsLogged() {
			logger.Debug("Navigation vetoed, not authenticated",
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAnonymous vetoes the navigation and redirects to the session list
// when someone is already logged in. Mirror of RequireAuthenticated; the two
// can never both veto the same evaluation.
func RequireAnonymous(state AuthState, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if state.IsLogged() {
			logger.Debug("Navigation vetoed, already authenticated",
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, "/sessions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin vetoes the navigation and redirects to the session list when
// the logged-in user lacks the admin role. Stacked after
// RequireAuthenticated on the create/update routes; the form controller
// re-checks on construction regardless.
func RequireAdmin(state AuthState, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !state.IsAdmin() {
			logger.Debug("Navigation vetoed, admin role required",
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, "/sessions")
			c.Abort()
			return
		}
		c.Next()
	}
}
