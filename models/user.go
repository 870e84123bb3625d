package models

import "time"

// User is the persisted account row. Username and email are unique
// across active and inactive users.
type User struct {
	ID           int64      `json:"id" db:"id" bson:"id,omitempty"`
	Username     string     `json:"username" db:"username" bson:"username"`
	Email        string     `json:"email" db:"email" bson:"email"`
	PasswordHash string     `json:"-" db:"password_hash" bson:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name" bson:"first_name"`
	LastName     string     `json:"last_name" db:"last_name" bson:"last_name"`
	Role         string     `json:"role" db:"role" bson:"role"`
	IsActive     bool       `json:"is_active" db:"is_active" bson:"is_active"`
	LastLogin    *time.Time `json:"last_login" db:"last_login" bson:"last_login,omitempty"`
}

// UserInfo is the projection returned to clients. It never carries the
// password hash.
type UserInfo struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Info projects the user for client responses.
func (u *User) Info() UserInfo {
	return UserInfo{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
	}
}
