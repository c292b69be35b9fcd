package domain

import (
	"errors"
	"strings"
)

// ErrEmptyProjectTypeName indicates a project type was created or replaced
// with a blank name.
var ErrEmptyProjectTypeName = errors.New("project type name cannot be empty")

// ProjectType categorizes projects (e.g. "Web", "Mobile").
// Names are unique.
type ProjectType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewProjectType creates a ProjectType with the given name. The ID is
// assigned by the store on insert. Returns an error if validation fails.
func NewProjectType(name string) (*ProjectType, error) {
	pt := &ProjectType{Name: name}
	if err := pt.Validate(); err != nil {
		return nil, err
	}
	return pt, nil
}

// Validate checks that the ProjectType has valid data. Whitespace-only
// names count as empty.
func (p *ProjectType) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProjectTypeName
	}
	return nil
}
