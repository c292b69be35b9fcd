// Package main implements the entry point for the roster API server,
// a CRUD management service for teams, roles, project types, developers
// and projects, fronted by a token-issuing auth endpoint.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/rosterhq/roster-api/internal/api/middleware"
	"github.com/rosterhq/roster-api/internal/config"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/platform/postgres"
	"github.com/rosterhq/roster-api/internal/service"
	"github.com/rosterhq/roster-api/internal/service/auth"
)

// application holds the assembled dependency graph for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	teamService        service.TeamService
	roleService        service.RoleService
	projectTypeService service.ProjectTypeService
	developerService   service.DeveloperService
	projectService     service.ProjectService
	tokenService       auth.TokenService
	authMiddleware     *middleware.AuthMiddleware
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and wires up the application components:
// logging, database, migrations, stores, services and middleware.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	teamStore := postgres.NewPostgresTeamStore(db, appLogger)
	roleStore := postgres.NewPostgresRoleStore(db, appLogger)
	projectTypeStore := postgres.NewPostgresProjectTypeStore(db, appLogger)
	developerStore := postgres.NewPostgresDeveloperStore(db, appLogger)
	projectStore := postgres.NewPostgresProjectStore(db, appLogger)

	teamService, err := service.NewTeamService(teamStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create team service: %w", err)
	}
	roleService, err := service.NewRoleService(roleStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}
	projectTypeService, err := service.NewProjectTypeService(projectTypeStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project type service: %w", err)
	}
	developerService, err := service.NewDeveloperService(developerStore, teamStore, roleStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create developer service: %w", err)
	}
	projectService, err := service.NewProjectService(db, projectStore, teamStore, projectTypeStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:             cfg,
		logger:             appLogger,
		db:                 db,
		teamService:        teamService,
		roleService:        roleService,
		projectTypeService: projectTypeService,
		developerService:   developerService,
		projectService:     projectService,
		tokenService:       tokenService,
		authMiddleware:     middleware.NewAuthMiddleware(tokenService),
	}, nil
}

// cleanup releases held resources; safe to call once during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
