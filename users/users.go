package users

import "strings"

// RoleType is the display/authorization label the integrations API assigns to a user
type RoleType string

const (
	RoleAdmin   RoleType = "Admin"
	RoleManager RoleType = "Manager"
	RoleAgent   RoleType = "Agent"
)

// Roles lists the roles offered by the user form, in display order
var Roles = []RoleType{RoleAdmin, RoleManager, RoleAgent}

// User is the account record returned by the integrations API.
// It is also embedded in the session cookie, so the JSON names are part of the cookie format.
type User struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Role     RoleType `json:"role"`
}

// Input carries the writable fields for create and update calls.
// An empty Password leaves the current password untouched on update.
type Input struct {
	FullName string   `json:"full_name,omitempty" validate:"required,min=2"`
	Email    string   `json:"email,omitempty" validate:"required,email"`
	Password string   `json:"password,omitempty"`
	Role     RoleType `json:"role,omitempty" validate:"omitempty,oneof=Admin Manager Agent"`
}

// DisplayName falls back to the email when the user has no name
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Email
}

// Initials returns up to two upper case initials for avatars
func (u User) Initials() string {
	names := strings.Fields(u.DisplayName())
	switch {
	case len(names) == 0:
		return "?"
	case len(names) > 1:
		return strings.ToUpper(string([]rune(names[0])[0]) + string([]rune(names[len(names)-1])[0]))
	default:
		r := []rune(names[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	}
}
