// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Product is a sellable item. Its category set is resolved transactionally at
// write time: existing names are linked, unknown names are created first.
type Product struct {
	ID         uuid.UUID
	Name       string  // Non-blank.
	Price      float64 // Never negative.
	Categories []Category
}
