// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a unique "person" or "account".
// PasswordHash stores only the bcrypt hash; the plaintext password never leaves
// the registration/login path.
type User struct {
	ID           int64          // Numeric identity, generated by the database.
	Name         string         // The user's display name or real name.
	Username     string         // Unique handle shown on posts and profiles.
	Email        string         // The user's primary contact email, used as the login identifier.
	PasswordHash string         // bcrypt hash of the user's password.
	Phone        string         // Unique phone number, checked at registration.
	Address      string         // Free-form postal address.
	ProfilePic   string         // Stable URL of the profile picture in the media store, if any.
	Bio          string         // Short self-description.
	State        LifecycleState // Active unless the account has been deactivated.
	CreatedAt    time.Time      // Timestamp of when this user account was created.
}
