package service

import "storefront/internal/domain/entity"

// OtpIssuer creates fresh one-time passwords and decides whether an issued one
// is still inside its validity window.
type OtpIssuer interface {
	Generate() entity.OneTimePassword
	IsValid(otp *entity.OneTimePassword) bool
}
