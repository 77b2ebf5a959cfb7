// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The pending OTP is embedded as a nullable column pair; both are cleared together.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Login        string    `gorm:"type:varchar(15);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	BirthDate    time.Time `gorm:"type:date;not null"`
	MobilePhone  string    `gorm:"type:varchar(11);not null"`
	Enabled      bool      `gorm:"not null;default:false"`
	Role         string    `gorm:"type:varchar(20);not null"`

	OtpCode        *string    `gorm:"type:varchar(6)"`
	OtpGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Wishlists []WishlistModel `gorm:"foreignKey:UserID"`
	Addresses []AddressModel  `gorm:"foreignKey:UserID"`
	Cart      *CartModel      `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
