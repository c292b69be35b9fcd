package domain

import (
	"errors"
	"strings"
)

// ErrEmptyRoleName indicates a role was created or renamed with a blank name.
var ErrEmptyRoleName = errors.New("role name cannot be empty")

// Role is a job function (e.g. "SWE", "QA") that a developer holds.
// Role names are required and unique.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewRole creates a Role with the given name. The ID is assigned by the
// store on insert. Returns an error if validation fails.
func NewRole(name string) (*Role, error) {
	role := &Role{Name: name}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return role, nil
}

// Validate checks that the Role has valid data. Whitespace-only names
// count as empty.
func (r *Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyRoleName
	}
	return nil
}
