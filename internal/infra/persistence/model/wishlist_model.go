package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table. The name is unique per owner,
// not globally. Product membership lives in the 'wishlist_products' join table.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_wishlists_name_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_name_user"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []ProductModel `gorm:"many2many:wishlist_products;joinForeignKey:wishlist_id;joinReferences:product_id"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}
