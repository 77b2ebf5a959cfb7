// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Wishlist is an owner-scoped collection of products. Its name is unique per
// owner, not globally, and every lookup must carry the owner predicate so that
// a foreign wishlist is indistinguishable from a missing one.
type Wishlist struct {
	ID       uuid.UUID
	Name     string
	OwnerID  uuid.UUID
	Products []Product
}
