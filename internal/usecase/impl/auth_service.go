package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface: registration, the OTP
// verification state machine, login and the password reset flow.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpIssuer    service.OtpIssuer
	mailer       service.Mailer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OtpIssuer    service.OtpIssuer
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpIssuer:    params.OtpIssuer,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a disabled account with a freshly issued OTP and mails the
// verification code. The user row stands even when the mail dispatch fails; a
// resend repairs that case.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		taken, err := userRepo.ExistsByLogin(ctx, input.Login)
		if err != nil {
			return errors.Wrap(err, "failed to check login")
		}
		if taken {
			return domainerrors.ErrLoginAlreadyExists
		}

		taken, err = userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if taken {
			return domainerrors.ErrEmailAlreadyExists
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		otp := srv.otpIssuer.Generate()
		user = &entity.User{
			Login:        input.Login,
			PasswordHash: hash,
			Email:        input.Email,
			BirthDate:    input.BirthDate,
			MobilePhone:  input.MobilePhone,
			Enabled:      false,
			Role:         entity.RoleUser,
			Otp:          &otp,
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign up", slog.String("login", input.Login), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID), slog.String("login", user.Login))

	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Otp.Code); err != nil {
		srv.log(ctx).Error("Failed to dispatch verification mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrMailDispatch
	}

	return user, nil
}

// Login authenticates by login name and password and issues an access token.
// A wrong login and a wrong password are indistinguishable.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Enabled {
		return nil, domainerrors.ErrUserNotEnabled
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role.Authorities())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.AccessTokenDuration(),
		User:        user,
	}, nil
}

// VerifyAccount consumes the mailed code: the presented code must match the
// issued one and still be inside its validity window.
func (srv *authService) VerifyAccount(ctx context.Context, input usecase.VerifyAccountInput) error {
	user, err := srv.findByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if user.Enabled {
		return domainerrors.ErrUserAlreadyVerified
	}

	if !user.Otp.Matches(input.Code) || !srv.otpIssuer.IsValid(user.Otp) {
		return domainerrors.ErrInvalidOtp
	}

	user.Enabled = true
	user.Otp = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("Account verified", slog.Any("userID", user.ID))

	return nil
}

// ResendVerification reissues the verification code, overwriting the prior
// one, and mails it.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.Enabled {
		return domainerrors.ErrUserAlreadyVerified
	}

	return srv.reissueAndSend(ctx, user, srv.mailer.SendVerificationCode)
}

// RequestPasswordReset issues a reset code for a verified account and mails
// it. The code is written before the dispatch is attempted.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !user.Enabled {
		return domainerrors.ErrUserNotEnabled
	}

	return srv.reissueAndSend(ctx, user, srv.mailer.SendPasswordResetCode)
}

// ConfirmPasswordReset consumes the reset code and replaces the password.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.Email == "" || input.Code == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return domainerrors.ErrMissingResetArguments
	}

	user, err := srv.findByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if !user.Otp.Matches(input.Code) || !srv.otpIssuer.IsValid(user.Otp) {
		return domainerrors.ErrInvalidOtp
	}

	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordsDoNotMatch
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = hash
	user.Otp = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

func (srv *authService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// reissueAndSend writes a fresh OTP onto the user before attempting the mail
// dispatch, so a failed dispatch leaves a resendable state behind.
func (srv *authService) reissueAndSend(ctx context.Context, user *entity.User, send func(ctx context.Context, email, code string) error) error {
	otp := srv.otpIssuer.Generate()
	user.Otp = &otp
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("OTP reissued", slog.Any("userID", user.ID))

	if err := send(ctx, user.Email, otp.Code); err != nil {
		srv.log(ctx).Error("Failed to dispatch OTP mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return domainerrors.ErrMailDispatch
	}

	return nil
}
