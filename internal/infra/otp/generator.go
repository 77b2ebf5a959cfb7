// Package otp issues the numeric one-time passwords used for account
// verification and password reset.
package otp

import (
	"crypto/rand"
	"math/big"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// CodeLength is the number of digits in an issued code.
const CodeLength = 6

// generator issues crypto-random numeric codes with a fixed validity window.
type generator struct {
	ttl time.Duration
	now func() time.Time
}

// NewGenerator is the constructor for the OTP issuer. Codes expire ttl after
// they are generated.
func NewGenerator(ttl time.Duration) service.OtpIssuer {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &generator{ttl: ttl, now: time.Now}
}

// Generate produces a fresh zero-padded numeric code stamped with the current
// time.
func (g *generator) Generate() entity.OneTimePassword {
	digits := make([]byte, CodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the platform entropy source is
			// broken, at which point issuing codes is not safe anyway.
			panic(err)
		}
		digits[i] = byte('0' + n.Int64())
	}

	return entity.OneTimePassword{
		Code:        string(digits),
		GeneratedAt: g.now(),
	}
}

// IsValid reports whether the given code is still inside its validity window.
func (g *generator) IsValid(otp *entity.OneTimePassword) bool {
	return otp.ValidAt(g.now(), g.ttl)
}
