package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the domain's WishlistRepository interface.
// Every read carries the owner predicate, so a foreign wishlist surfaces as
// ErrWishlistNotFound rather than anything distinguishable.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Create persists a new empty wishlist.
func (repo *wishlistRepository) Create(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlistM := &model.WishlistModel{
		ID:     wishlist.ID,
		Name:   wishlist.Name,
		UserID: wishlist.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Create(wishlistM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWishlistAlreadyExists.With("name", wishlist.Name)
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist")
	}

	wishlist.ID = wishlistM.ID

	return nil
}

// FindByIDAndOwner retrieves one wishlist of the owner with its products.
func (repo *wishlistRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel
	err := repo.db.WithContext(ctx).
		Preload("Products.Categories").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&wishlistM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist by ID and owner")
	}

	return toWishlistDomain(&wishlistM), nil
}

// FindByNameAndOwner retrieves one wishlist of the owner by name.
func (repo *wishlistRepository) FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel
	err := repo.db.WithContext(ctx).
		Preload("Products.Categories").
		Where("name = ? AND user_id = ?", name, ownerID).
		First(&wishlistM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist by name and owner")
	}

	return toWishlistDomain(&wishlistM), nil
}

// ExistsByNameAndOwner reports whether the owner already has a wishlist with
// the given name.
func (repo *wishlistRepository) ExistsByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("name = ? AND user_id = ?", name, ownerID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist existence")
	}

	return count > 0, nil
}

// CountByOwner returns how many wishlists the owner has.
func (repo *wishlistRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count wishlists by owner")
	}

	return count, nil
}

// Rename changes the wishlist's name.
func (repo *wishlistRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrWishlistAlreadyExists.With("name", name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rename wishlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistNotFound
	}

	return nil
}

// AddProduct links a product to the wishlist. Adding an already linked product
// is a no-op.
func (repo *wishlistRepository) AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("INSERT INTO wishlist_products (wishlist_id, product_id) VALUES (?, ?) ON CONFLICT DO NOTHING", wishlistID, productID).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product to wishlist")
	}

	return nil
}

// RemoveProduct unlinks a product from the wishlist. Removing an absent
// product is a no-op.
func (repo *wishlistRepository) RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("DELETE FROM wishlist_products WHERE wishlist_id = ? AND product_id = ?", wishlistID, productID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product from wishlist")
	}

	return nil
}

// Delete removes a wishlist and its product links.
func (repo *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("DELETE FROM wishlist_products WHERE wishlist_id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink wishlist products")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistNotFound
	}

	return nil
}

// DeleteByOwner removes every wishlist of the owner. Used by account deletion.
func (repo *wishlistRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("DELETE FROM wishlist_products WHERE wishlist_id IN (SELECT id FROM wishlists WHERE user_id = ?)", ownerID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink wishlist products by owner")
	}

	err = repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&model.WishlistModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete wishlists by owner")
	}

	return nil
}

// ListByOwner returns one page of the owner's wishlists in the requested
// order.
func (repo *wishlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*entity.Wishlist, error) {
	var wishlistModels []*model.WishlistModel
	err := repo.db.WithContext(ctx).
		Preload("Products.Categories").
		Where("user_id = ?", ownerID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: page.SortField}, Desc: page.Desc}).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&wishlistModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlists by owner")
	}

	wishlists := make([]*entity.Wishlist, 0, len(wishlistModels))
	for _, wishlistM := range wishlistModels {
		wishlists = append(wishlists, toWishlistDomain(wishlistM))
	}

	return wishlists, nil
}

// --- Mapper Functions ---

// toWishlistDomain converts a GORM WishlistModel to a domain Wishlist entity.
func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	products := make([]entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, *toProductDomain(&data.Products[i]))
	}

	return &entity.Wishlist{
		ID:       data.ID,
		Name:     data.Name,
		OwnerID:  data.UserID,
		Products: products,
	}
}
