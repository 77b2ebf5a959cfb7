// Package entity contains the core business objects of the project.
package entity

import "time"

// OneTimePassword is the code mailed out during account verification and
// password reset. It lives embedded on the User that it was issued for and is
// overwritten or cleared on every lifecycle transition; it is never stored or
// queried on its own.
type OneTimePassword struct {
	Code        string    // The random code the user must echo back.
	GeneratedAt time.Time // Issue time; the code expires a fixed TTL after this.
}

// Matches reports whether the presented code equals the issued one.
func (o *OneTimePassword) Matches(code string) bool {
	return o != nil && o.Code != "" && o.Code == code
}

// ValidAt reports whether the code is still inside its time window at the
// given instant. An expired code is invalid even when the string matches.
func (o *OneTimePassword) ValidAt(now time.Time, ttl time.Duration) bool {
	if o == nil {
		return false
	}

	return now.Sub(o.GeneratedAt) < ttl
}
