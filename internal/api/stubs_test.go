package api_test

import (
	"context"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/service"
	"github.com/rosterhq/roster-api/internal/service/auth"
)

// Function-backed service stubs for handler tests.

type stubTeamService struct {
	listFn   func(ctx context.Context) ([]*domain.Team, error)
	getFn    func(ctx context.Context, id int64) (*domain.Team, error)
	createFn func(ctx context.Context, name string) (*domain.Team, error)
	updateFn func(ctx context.Context, id int64, patch service.TeamUpdate) (*domain.Team, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ service.TeamService = (*stubTeamService)(nil)

func (s *stubTeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.listFn(ctx)
}

func (s *stubTeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return s.getFn(ctx, id)
}

func (s *stubTeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	return s.createFn(ctx, name)
}

func (s *stubTeamService) UpdateTeam(ctx context.Context, id int64, patch service.TeamUpdate) (*domain.Team, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubTeamService) DeleteTeam(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubRoleService struct {
	listFn   func(ctx context.Context) ([]*domain.Role, error)
	getFn    func(ctx context.Context, id int64) (*domain.Role, error)
	createFn func(ctx context.Context, name string) (*domain.Role, error)
	updateFn func(ctx context.Context, id int64, patch service.RoleUpdate) (*domain.Role, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ service.RoleService = (*stubRoleService)(nil)

func (s *stubRoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.getFn(ctx, id)
}

func (s *stubRoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.createFn(ctx, name)
}

func (s *stubRoleService) UpdateRole(ctx context.Context, id int64, patch service.RoleUpdate) (*domain.Role, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubRoleService) DeleteRole(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubProjectTypeService struct {
	listFn    func(ctx context.Context) ([]*domain.ProjectType, error)
	getFn     func(ctx context.Context, id int64) (*domain.ProjectType, error)
	createFn  func(ctx context.Context, name string) (*domain.ProjectType, error)
	replaceFn func(ctx context.Context, id int64, pt *domain.ProjectType) error
	deleteFn  func(ctx context.Context, id int64) error
}

var _ service.ProjectTypeService = (*stubProjectTypeService)(nil)

func (s *stubProjectTypeService) ListProjectTypes(ctx context.Context) ([]*domain.ProjectType, error) {
	return s.listFn(ctx)
}

func (s *stubProjectTypeService) GetProjectType(ctx context.Context, id int64) (*domain.ProjectType, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectTypeService) CreateProjectType(ctx context.Context, name string) (*domain.ProjectType, error) {
	return s.createFn(ctx, name)
}

func (s *stubProjectTypeService) ReplaceProjectType(ctx context.Context, id int64, pt *domain.ProjectType) error {
	return s.replaceFn(ctx, id, pt)
}

func (s *stubProjectTypeService) DeleteProjectType(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubDeveloperService struct {
	listFn   func(ctx context.Context) ([]*domain.Developer, error)
	getFn    func(ctx context.Context, id int64) (*domain.Developer, error)
	createFn func(ctx context.Context, dev *domain.Developer) (*domain.Developer, error)
	updateFn func(ctx context.Context, id int64, patch service.DeveloperUpdate) (*domain.Developer, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ service.DeveloperService = (*stubDeveloperService)(nil)

func (s *stubDeveloperService) ListDevelopers(ctx context.Context) ([]*domain.Developer, error) {
	return s.listFn(ctx)
}

func (s *stubDeveloperService) GetDeveloper(ctx context.Context, id int64) (*domain.Developer, error) {
	return s.getFn(ctx, id)
}

func (s *stubDeveloperService) CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	return s.createFn(ctx, dev)
}

func (s *stubDeveloperService) UpdateDeveloper(ctx context.Context, id int64, patch service.DeveloperUpdate) (*domain.Developer, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubDeveloperService) DeleteDeveloper(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubProjectService struct {
	listFn   func(ctx context.Context) ([]*domain.Project, error)
	getFn    func(ctx context.Context, id int64) (*domain.Project, error)
	createFn func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	updateFn func(ctx context.Context, id int64, patch service.ProjectUpdate) (*domain.Project, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ service.ProjectService = (*stubProjectService)(nil)

func (s *stubProjectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, project)
}

func (s *stubProjectService) UpdateProject(ctx context.Context, id int64, patch service.ProjectUpdate) (*domain.Project, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubTokenService struct {
	issueFn func(ctx context.Context) (string, error)
}

var _ auth.TokenService = (*stubTokenService)(nil)

func (s *stubTokenService) IssueToken(ctx context.Context) (string, error) {
	return s.issueFn(ctx)
}

func (s *stubTokenService) ValidateToken(_ context.Context, _ string) (*auth.Claims, error) {
	return &auth.Claims{}, nil
}
