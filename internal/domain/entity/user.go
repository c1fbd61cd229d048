// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity entity. The same record backs both storefront
// customers and back-office administrators; IsAdmin gates the privileged
// surface.
type User struct {
	ID           uint      `json:"id"`         // Auto-increment primary key.
	Username     string    `json:"username"`   // Globally unique login name.
	Email        string    `json:"email"`      // Globally unique contact email.
	PasswordHash string    `json:"-"`          // Salted bcrypt hash. Never serialized, never stored in plaintext.
	IsAdmin      bool      `json:"is_admin"`   // Grants access to the admin back-office when true.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
}
