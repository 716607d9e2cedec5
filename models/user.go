// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Preferences holds display-only user settings.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// DefaultPreferences returns the settings assigned to a freshly registered user.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "dark", Notifications: true}
}

// UserStats holds the task counters maintained alongside task mutations.
type UserStats struct {
	TasksCreated   int64 `json:"tasksCreated"`
	TasksCompleted int64 `json:"tasksCompleted"`
}

// User represents an account entity used for authentication and task ownership.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// ID is the store-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the optional display name, stored trimmed.
	Name string `json:"name"`

	// Email is the unique login identifier, stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	Role        Role        `json:"role"`
	Preferences Preferences `json:"preferences"`
	Stats       UserStats   `json:"stats"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the subset of user fields returned together with a token.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips everything but the identity fields from u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
