package routes

import (
	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/clientdesk/docs"
	"github.com/linskybing/clientdesk/internal/api/handlers"
	"github.com/linskybing/clientdesk/internal/api/middleware"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every endpoint on r. Reads are public; writes and the
// per-user views go through the JWT middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, jwt *middleware.JWT) {
	auth := jwt.JWTAuthMiddleware()

	r.GET("/healthz", h.Health.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/api-token-auth/", h.User.ObtainToken)
	r.POST("/register/", h.User.Register)
	r.GET("/me/", auth, h.User.Me)

	clients := r.Group("/clients")
	{
		clients.GET("/", h.Client.ListClients)
		clients.POST("/", auth, h.Client.CreateClient)
		clients.GET("/:id/", h.Client.GetClient)
		clients.PUT("/:id/", auth, h.Client.UpdateClient)
		clients.PATCH("/:id/", auth, h.Client.UpdateClient)
		clients.DELETE("/:id/", auth, h.Client.DeleteClient)
		clients.POST("/:id/projects/", auth, h.Project.CreateProject)
	}

	r.GET("/projects/", auth, h.Project.ListMyProjects)
	r.GET("/audit/logs/", auth, h.Audit.GetAuditLogs)
}

// NewRouter wires repositories into services and handlers and returns a
// ready gin engine with the global middleware installed.
func NewRouter(cfg *config.Config, repos *repository.Repos, db handlers.Pinger) (*gin.Engine, *application.Services) {
	jwt := middleware.NewJWT(cfg, repos.User)
	svc := application.New(repos, jwt)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(), gin.Recovery(), middleware.CORSMiddleware(cfg))

	RegisterRoutes(r, handlers.New(svc, db), jwt)
	return r, svc
}
