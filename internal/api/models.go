package api

// Common request/response structures

// CreateTeamRequest defines the payload for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateTeamRequest defines the payload for a partial team update.
// A nil Name keeps the stored value.
type UpdateTeamRequest struct {
	Name *string `json:"name"`
}

// CreateRoleRequest defines the payload for creating a role.
type CreateRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateRoleRequest defines the payload for a partial role update.
type UpdateRoleRequest struct {
	Name *string `json:"name"`
}

// CreateProjectTypeRequest defines the payload for creating a project type.
type CreateProjectTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// ReplaceProjectTypeRequest defines the payload for the project-type full
// replace. The id must match the path id.
type ReplaceProjectTypeRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// CreateDeveloperRequest defines the payload for creating a developer.
// Names may be blank; the foreign keys are validated against existing rows
// by the service rather than by payload validation, so the client always
// gets a field-attributed message for a dangling reference.
type CreateDeveloperRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	TeamID    int64  `json:"teamId"`
	RoleID    int64  `json:"roleId"`
}

// UpdateDeveloperRequest defines the payload for a partial developer update.
// Name fields merge; the foreign keys are always overwritten, absent fields
// included.
type UpdateDeveloperRequest struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	TeamID    int64   `json:"teamId"`
	RoleID    int64   `json:"roleId"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name          string `json:"name" validate:"required"`
	TeamID        int64  `json:"teamId"`
	ProjectTypeID int64  `json:"projectTypeId"`
}

// UpdateProjectRequest defines the payload for a partial project update.
type UpdateProjectRequest struct {
	Name          *string `json:"name"`
	TeamID        int64   `json:"teamId"`
	ProjectTypeID int64   `json:"projectTypeId"`
}

// TokenResponse defines the successful response for the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse defines the body for plain success messages. The capital
// "Message" key matches the error body shape the API publishes.
type MessageResponse struct {
	Message string `json:"Message"`
}
