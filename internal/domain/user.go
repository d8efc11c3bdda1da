package domain

import "time"

// User is the domain entity for a user account.
// Password is kept verbatim; it must never leave the service boundary.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// PublicUser is the outward-facing view of a User, without the password.
type PublicUser struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Public strips the password.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
