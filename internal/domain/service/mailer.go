package service

import "context"

// Mailer dispatches the OTP messages. Dispatch is attempted after the issuing
// write has committed; a dispatch failure surfaces as an error to the caller
// and leaves a valid OTP the user never received, which a resend repairs.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
	SendPasswordResetCode(ctx context.Context, email, code string) error
}
