// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Address is a delivery address owned by exactly one user. Lookups are always
// owner-scoped.
type Address struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Street     string
	City       string
	State      string
	PostalCode string // Pattern NNNNN-NNN.
}
