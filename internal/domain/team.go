package domain

import (
	"errors"
	"strings"
)

// ErrEmptyTeamName indicates a team was created or renamed with a blank name.
var ErrEmptyTeamName = errors.New("team name cannot be empty")

// Team is an organizational unit that developers and projects belong to.
// Team names are unique; uniqueness is enforced at creation time by the
// service layer and backstopped by a database constraint.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewTeam creates a Team with the given name. The ID is assigned by the
// store on insert. Returns an error if validation fails.
func NewTeam(name string) (*Team, error) {
	team := &Team{Name: name}
	if err := team.Validate(); err != nil {
		return nil, err
	}
	return team, nil
}

// Validate checks that the Team has valid data. Whitespace-only names
// count as empty; the name itself is stored as given.
func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTeamName
	}
	return nil
}
