package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signUpRequest is the JSON body of the registration endpoint.
type signUpRequest struct {
	Login       string `json:"login" validate:"required,min=5,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"required,email"`
	BirthDate   string `json:"birthDate" validate:"required"`
	MobilePhone string `json:"mobilePhone" validate:"required,mobilephone"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthHandler holds dependencies for registration, login and the password
// reset flow.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input signUpRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	birthDate, err := time.Parse(time.DateOnly, input.BirthDate)
	if err != nil || !birthDate.Before(time.Now()) {
		return errors.WithStack(domainerrors.ErrValidationFailed.With("field", "birthDate"))
	}

	user, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Login:       input.Login,
		Password:    input.Password,
		Email:       input.Email,
		BirthDate:   birthDate,
		MobilePhone: input.MobilePhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "Account registered, check your email for the verification code")
}

// Login handles the login request and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := LoginView{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
		User:        toUserView(output.User),
	}

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// VerifyAccount handles the account activation request.
func (h *AuthHandler) VerifyAccount(c echo.Context) error {
	var input verifyAccountRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyAccount(c.Request().Context(), usecase.VerifyAccountInput{
		Email: input.Email,
		Code:  input.Code,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account verified successfully")
}

// ResendVerification mails a fresh verification code.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendVerification(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// RequestPasswordReset mails a password reset code.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset code sent")
}

// ConfirmPasswordReset applies a new password guarded by the mailed code.
// Field presence is checked in the usecase so the dedicated missing-arguments
// error fires before any validation shape error.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid input")
	}

	if err := h.uc.ConfirmPasswordReset(c.Request().Context(), usecase.ResetPasswordInput{
		Email:           input.Email,
		Code:            input.Code,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}
