// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a registered climber.
// PasswordHash holds the bcrypt digest (salt and cost embedded) and must
// never leave the service layer in API responses.
type User struct {
	ID           int64     // Database-generated numeric identifier.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	Age          int       // The user's age in years.
	PasswordHash string    // One-way digest of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
