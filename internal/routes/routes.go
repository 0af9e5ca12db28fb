package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/domain/auth"
	"github.com/savasana/yoga-web/internal/app/domain/sessions"
	"github.com/savasana/yoga-web/internal/app/domain/user"
	"github.com/savasana/yoga-web/internal/app/guard"
	"github.com/savasana/yoga-web/internal/app/session"
)

type AppHandlers struct {
	Auth     *auth.Handler
	Sessions *sessions.Handler
	User     *user.Handler
}

// Setup wires the client-visible routes and their guards. Guard decisions
// are taken before any view handler runs; an aborted navigation never
// reaches its view.
func Setup(r *gin.Engine, h *AppHandlers, store *session.Store, logger *zap.Logger) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"app": "Yoga app", "isLogged": store.IsLogged()})
	})

	r.GET("/404", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found !"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/404")
	})

	anonymous := r.Group("/", guard.RequireAnonymous(store, logger))
	{
		anonymous.GET("/login", h.Auth.LoginForm)
		anonymous.POST("/login", h.Auth.Login)
		anonymous.GET("/register", h.Auth.RegisterForm)
		anonymous.POST("/register", h.Auth.Register)
	}

	authenticated := r.Group("/", guard.RequireAuthenticated(store, logger))
	{
		authenticated.POST("/logout", h.Auth.Logout)

		authenticated.GET("/sessions", h.Sessions.List)
		authenticated.GET("/sessions/detail/:id", h.Sessions.Detail)
		authenticated.POST("/sessions/detail/:id/participate", h.Sessions.Participate)
		authenticated.DELETE("/sessions/detail/:id/participate", h.Sessions.UnParticipate)
		authenticated.DELETE("/sessions/detail/:id", h.Sessions.Delete)

		authenticated.GET("/me", h.User.Me)
		authenticated.DELETE("/me", h.User.DeleteAccount)

		admin := authenticated.Group("/", guard.RequireAdmin(store, logger))
		{
			admin.GET("/sessions/create", h.Sessions.CreateForm)
			admin.POST("/sessions/create", h.Sessions.SubmitCreate)
			admin.GET("/sessions/update/:id", h.Sessions.UpdateForm)
			admin.PUT("/sessions/update/:id", h.Sessions.SubmitUpdate)
		}
	}
}
