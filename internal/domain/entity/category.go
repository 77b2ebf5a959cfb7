// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Category groups products. Categories are created on demand when a product
// references a name that does not exist yet, and deleting one never cascades
// to the products inside it.
type Category struct {
	ID   uuid.UUID
	Name string // Non-blank, unique by convention.
}
