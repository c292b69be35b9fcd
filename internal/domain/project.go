package domain

// Project is a piece of work owned by a team and categorized by a project
// type. On creation the resolved Team and ProjectType aggregates are
// attached alongside the foreign keys, mirroring the store-level referential
// population the API contract promises in the Created body.
type Project struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TeamID        int64  `json:"teamId"`
	ProjectTypeID int64  `json:"projectTypeId"`

	// Populated by the service on create; nil on plain reads.
	Team        *Team        `json:"team,omitempty"`
	ProjectType *ProjectType `json:"projectType,omitempty"`
}

// NewProject creates a Project. The ID is assigned by the store on insert.
func NewProject(name string, teamID, projectTypeID int64) *Project {
	return &Project{
		Name:          name,
		TeamID:        teamID,
		ProjectTypeID: projectTypeID,
	}
}

// Attach sets the resolved team and project type aggregates on the project.
func (p *Project) Attach(team *Team, projectType *ProjectType) {
	p.Team = team
	p.ProjectType = projectType
}
