package model

import "time"

// Role is a user's access level. Exactly two roles exist; comparison is
// flat string equality with no hierarchy.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a store customer or administrator
type User struct {
	ID           ID
	Name         string
	Email        string // unique, always stored lowercase
	PasswordHash string // never exposed outside the storage layer
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
