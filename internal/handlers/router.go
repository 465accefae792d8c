package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/config"
	"github.com/viltrumflow/taskflow-api/internal/middleware"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

const apiPrefix = "/api/v1"

// NewRouter builds the gin engine with every route mounted
func NewRouter(cfg *config.Config, svcs *services.Services, db Pinger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ProcessTime(),
		middleware.Logger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorHandler(cfg.Debug),
		gin.Recovery(),
	)

	health := NewHealthHandler(cfg, db)
	r.GET("/", health.Root)
	r.GET("/health", health.Health)

	authHandler := NewAuthHandler(svcs.Auth, svcs.Users)
	userHandler := NewUserHandler(svcs.Users)
	projectHandler := NewProjectHandler(svcs.Projects)
	taskHandler := NewTaskHandler(svcs.Tasks)
	commentHandler := NewCommentHandler(svcs.Comments)
	prefsHandler := NewPreferencesHandler(svcs.Preferences)

	requireAuth := middleware.RequireAuth(svcs.Auth)
	id := middleware.RequireIDParam("id")

	api := r.Group(apiPrefix)
	api.GET("/info", health.Info)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/me", requireAuth, authHandler.Me)
	}

	users := api.Group("/users")
	{
		users.POST("", authHandler.Register)

		users.Use(requireAuth)
		users.GET("", userHandler.ListUsers)
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateMe)
		users.DELETE("/me", userHandler.DeleteMe)
		users.PUT("/me/password", userHandler.ChangeMyPassword)
		users.GET("/:id", id, userHandler.GetUser)
		users.PUT("/:id", id, userHandler.UpdateUser)
		users.DELETE("/:id", id, userHandler.DeleteUser)
		users.PUT("/:id/password", id, userHandler.ChangePassword)
	}

	projects := api.Group("/projects", requireAuth)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/slug/:slug", projectHandler.GetProjectBySlug)
		projects.GET("/:id", id, projectHandler.GetProject)
		projects.GET("/:id/stats", id, projectHandler.GetProjectStats)
		projects.PUT("/:id", id, projectHandler.UpdateProject)
		projects.PATCH("/:id", id, projectHandler.UpdateProject)
		projects.DELETE("/:id", id, projectHandler.DeleteProject)
	}

	tasks := api.Group("/tasks", requireAuth)
	{
		tasks.GET("", taskHandler.ListMyTasks)
		tasks.GET("/all", taskHandler.ListAllTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", id, taskHandler.GetTask)
		tasks.PUT("/:id", id, taskHandler.UpdateTask)
		tasks.PATCH("/:id", id, taskHandler.UpdateTask)
		tasks.DELETE("/:id", id, taskHandler.DeleteTask)
	}

	comments := api.Group("/comments", requireAuth)
	{
		comments.GET("/task/:task_id", middleware.RequireIDParam("task_id"), commentHandler.ListTaskComments)
		comments.POST("", commentHandler.CreateComment)
		comments.GET("/:id", id, commentHandler.GetComment)
		comments.PUT("/:id", id, commentHandler.UpdateComment)
		comments.DELETE("/:id", id, commentHandler.DeleteComment)
	}

	prefs := api.Group("/preferences", requireAuth)
	{
		prefs.GET("", prefsHandler.GetPreferences)
		prefs.PUT("", prefsHandler.UpdatePreferences)
		prefs.PUT("/theme", prefsHandler.UpdateTheme)
	}

	return r
}
