package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOneTimePassword_Matches(t *testing.T) {
	otp := &OneTimePassword{Code: "123456"}

	assert.True(t, otp.Matches("123456"))
	assert.False(t, otp.Matches("654321"))
	assert.False(t, otp.Matches(""))

	var none *OneTimePassword
	assert.False(t, none.Matches("123456"))

	empty := &OneTimePassword{}
	assert.False(t, empty.Matches(""))
}

func TestOneTimePassword_ValidAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	otp := &OneTimePassword{Code: "123456", GeneratedAt: issued}
	ttl := 5 * time.Minute

	assert.True(t, otp.ValidAt(issued.Add(time.Second), ttl))
	assert.True(t, otp.ValidAt(issued.Add(ttl-time.Second), ttl))
	assert.False(t, otp.ValidAt(issued.Add(ttl), ttl))
	assert.False(t, otp.ValidAt(issued.Add(time.Hour), ttl))

	var none *OneTimePassword
	assert.False(t, none.ValidAt(issued, ttl))
}

func TestRole_Authorities(t *testing.T) {
	assert.Equal(t, []string{"user"}, RoleUser.Authorities())
	assert.Equal(t, []string{"admin", "user"}, RoleAdmin.Authorities())
}

func TestCartItem_Pricing(t *testing.T) {
	item := CartItem{
		Product:  Product{Name: "Keyboard", Price: 49.90},
		Quantity: 3,
	}

	assert.Equal(t, 49.90, item.UnitPrice())
	assert.InDelta(t, 149.70, item.TotalPrice(), 1e-9)
}
