package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	// SignupCredits is the balance granted to every newly registered account.
	SignupCredits = 25

	// UnlimitedThreshold marks an account as effectively unlimited: any
	// balance at or above it is never debited by generation.
	UnlimitedThreshold = 99999

	// UnlimitedCredits is the balance written when an unlimited plan is
	// approved.
	UnlimitedCredits = 999999
)

// User models an account holding a credit balance. Email is the unique,
// case-insensitive lookup key and is stored lowercased.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Credits      int       `json:"credits"`
	IsAdmin      bool      `json:"is_admin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role maps the admin flag onto the role claim carried in session tokens.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// HasUnlimitedCredits reports whether the account is exempt from debits.
func (u *User) HasUnlimitedCredits() bool {
	return u.Credits >= UnlimitedThreshold
}
