package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rosterhq/roster-api/internal/api"
	apiMiddleware "github.com/rosterhq/roster-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Read routes and the token endpoint are public; all
// mutating routes require a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.tokenService, app.logger)
	teamHandler := api.NewTeamHandler(app.teamService, app.logger)
	roleHandler := api.NewRoleHandler(app.roleService, app.logger)
	projectTypeHandler := api.NewProjectTypeHandler(app.projectTypeService, app.logger)
	developerHandler := api.NewDeveloperHandler(app.developerService, app.logger)
	projectHandler := api.NewProjectHandler(app.projectService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Token endpoint (public)
		r.Post("/auth/token", authHandler.IssueToken)

		// Read endpoints (public)
		r.Get("/teams", teamHandler.ListTeams)
		r.Get("/teams/{id}", teamHandler.GetTeam)
		r.Get("/roles", roleHandler.ListRoles)
		r.Get("/roles/{id}", roleHandler.GetRole)
		r.Get("/project-types", projectTypeHandler.ListProjectTypes)
		r.Get("/project-types/{id}", projectTypeHandler.GetProjectType)
		r.Get("/developers", developerHandler.ListDevelopers)
		r.Get("/developers/{id}", developerHandler.GetDeveloper)
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Mutating endpoints (bearer token required)
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Post("/teams", teamHandler.CreateTeam)
			r.Put("/teams/{id}", teamHandler.UpdateTeam)
			r.Delete("/teams/{id}", teamHandler.DeleteTeam)

			r.Post("/roles", roleHandler.CreateRole)
			r.Put("/roles/{id}", roleHandler.UpdateRole)
			r.Delete("/roles/{id}", roleHandler.DeleteRole)

			r.Post("/project-types", projectTypeHandler.CreateProjectType)
			r.Put("/project-types/{id}", projectTypeHandler.ReplaceProjectType)
			r.Delete("/project-types/{id}", projectTypeHandler.DeleteProjectType)

			r.Post("/developers", developerHandler.CreateDeveloper)
			r.Put("/developers/{id}", developerHandler.UpdateDeveloper)
			r.Delete("/developers/{id}", developerHandler.DeleteDeveloper)

			r.Post("/projects", projectHandler.CreateProject)
			r.Put("/projects/{id}", projectHandler.UpdateProject)
			r.Delete("/projects/{id}", projectHandler.DeleteProject)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
