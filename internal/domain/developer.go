package domain

// Developer is a person belonging to exactly one team and holding exactly
// one role. Both references must point at existing rows at creation time;
// the service layer verifies this before insert. Name fields carry no
// validation of their own — the source system accepts blank names.
type Developer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	TeamID    int64  `json:"teamId"`
	RoleID    int64  `json:"roleId"`
}

// NewDeveloper creates a Developer. The ID is assigned by the store on insert.
func NewDeveloper(firstName, lastName string, teamID, roleID int64) *Developer {
	return &Developer{
		FirstName: firstName,
		LastName:  lastName,
		TeamID:    teamID,
		RoleID:    roleID,
	}
}
