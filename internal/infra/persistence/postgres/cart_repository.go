package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cartRepository implements the domain's CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Create persists a new empty cart for an owner.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.ShoppingCart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindByOwner retrieves the owner's cart with its items and their products.
func (repo *cartRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ShoppingCart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", ownerID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// Touch bumps the cart's updated timestamp after an item mutation.
func (repo *cartRepository) Touch(ctx context.Context, cartID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch shopping cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// AddItem persists a new item line.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.Product.ID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID

	return nil
}

// FindItemByID retrieves one item with its product and the owning cart, so the
// caller can check the cart's owner.
func (repo *cartRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Cart").
		Where("id = ?", itemID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by ID")
	}

	return toCartItemDomain(&itemM), nil
}

// FindItemByCartAndProduct retrieves the item line of one product inside one
// cart.
func (repo *cartRepository) FindItemByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by cart and product")
	}

	return toCartItemDomain(&itemM), nil
}

// UpdateItemQuantity overwrites the quantity of one item line.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes one item line.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems removes every item line of one cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	return nil
}

// DeleteByOwner removes the owner's cart and its items. Used by account
// deletion.
func (repo *cartRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("DELETE FROM cart_items WHERE cart_id IN (SELECT id FROM shopping_carts WHERE user_id = ?)", ownerID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items by owner")
	}

	err = repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&model.CartModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart by owner")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain ShoppingCart entity.
func toCartDomain(data *model.CartModel) *entity.ShoppingCart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := data.Items[i]
		item := entity.CartItem{
			ID:          itemM.ID,
			CartID:      itemM.CartID,
			CartOwnerID: data.UserID,
			Quantity:    itemM.Quantity,
		}
		if itemM.Product != nil {
			item.Product = *toProductDomain(itemM.Product)
		}
		items = append(items, item)
	}

	return &entity.ShoppingCart{
		ID:        data.ID,
		OwnerID:   data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		ID:       data.ID,
		CartID:   data.CartID,
		Quantity: data.Quantity,
	}
	if data.Product != nil {
		item.Product = *toProductDomain(data.Product)
	}
	if data.Cart != nil {
		item.CartOwnerID = data.Cart.UserID
	}

	return item
}
