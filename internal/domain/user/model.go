package user

import "strings"

// Role decides which club operations a user may perform.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

var AllRoles = map[Role]struct{}{
	RoleAdmin:  {},
	RoleCoach:  {},
	RoleParent: {},
}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	_, ok := AllRoles[role]
	return role, ok
}

// User is a static club account. Passwords are compared as plain text.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	DisplayName string `json:"name"`
}

func (u User) Principal() Principal {
	return Principal{
		UserID:      u.ID,
		Username:    u.Username,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID      int64
	Username    string
	Role        Role
	DisplayName string
}

// FindByCredentials scans users for an exact username and password match.
func FindByCredentials(users []User, username, password string) (User, bool) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

func FindByID(users []User, id int64) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
