package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Login       string
	Password    string
	Email       string
	BirthDate   time.Time
	MobilePhone string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Login    string
	Password string
}

// VerifyAccountInput carries the email and the mailed code.
type VerifyAccountInput struct {
	Email string
	Code  string
}

// ResetPasswordInput carries the arguments of the reset confirmation step.
type ResetPasswordInput struct {
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
}

// AuthUsecase defines account registration, verification, login and the
// password reset flow.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	VerifyAccount(ctx context.Context, input VerifyAccountInput) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, input ResetPasswordInput) error
}

// AccountUsecase defines operations on the authenticated account itself.
type AccountUsecase interface {
	DeleteAccount(ctx context.Context, principal uuid.UUID) error
}
