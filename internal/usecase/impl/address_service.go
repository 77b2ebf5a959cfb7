package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for the address service, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every address of the principal. An empty address book is
// reported as a miss.
func (srv *addressService) List(ctx context.Context, principal uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListByOwner(ctx, principal)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, domainerrors.ErrAddressesEmpty
	}

	return addresses, nil
}

// Get retrieves one address of the principal.
func (srv *addressService) Get(ctx context.Context, principal, id uuid.UUID) (*entity.Address, error) {
	return srv.findOwned(ctx, principal, id)
}

// Add stores a new address, capped per user.
func (srv *addressService) Add(ctx context.Context, principal uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	count, err := srv.addressRepo.CountByOwner(ctx, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count addresses")
	}
	if count >= entity.MaxAddressesPerUser {
		return nil, domainerrors.ErrAddressLimitReached
	}

	address := &entity.Address{
		OwnerID:    principal,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
	}
	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Address added", slog.Any("addressID", address.ID), slog.Any("ownerID", principal))

	return address, nil
}

// Update rewrites one address of the principal.
func (srv *addressService) Update(ctx context.Context, principal, id uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.findOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.PostalCode = input.PostalCode

	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Address updated", slog.Any("addressID", id))

	return address, nil
}

// Remove deletes one address of the principal.
func (srv *addressService) Remove(ctx context.Context, principal, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Address removed", slog.Any("addressID", id))

	return nil
}

// findOwned resolves an address under the owner predicate and maps the miss to
// the domain error.
func (srv *addressService) findOwned(ctx context.Context, principal, id uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByIDAndOwner(ctx, id, principal)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, domainerrors.ErrAddressNotFound.With("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return address, nil
}
