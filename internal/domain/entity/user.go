// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity of the store. A user owns wishlists, addresses
// and exactly one shopping cart; until the account is verified through the
// one-time password flow it stays disabled and cannot log in.
type User struct {
	ID           uuid.UUID        // The unique identifier for the user.
	Login        string           // Login name, unique, 5-15 characters.
	PasswordHash string           // Bcrypt hash of the password; never the plaintext.
	Email        string           // Unique contact email, used for OTP delivery.
	BirthDate    time.Time        // Must lie in the past.
	MobilePhone  string           // Exactly 11 digits.
	Enabled      bool             // False until the account is verified.
	Role         Role             // USER or ADMIN.
	Otp          *OneTimePassword // Currently issued OTP, nil when none is pending.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	// MaxWishlistsPerUser caps how many wishlists one account may own.
	MaxWishlistsPerUser = 10
	// MaxAddressesPerUser caps how many addresses one account may own.
	MaxAddressesPerUser = 5
)
