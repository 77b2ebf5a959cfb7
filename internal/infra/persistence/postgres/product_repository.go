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

// productRepository implements the domain's ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product and its category links. Categories must
// already exist; only the join rows are written here.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).
		Omit("Categories.*").
		Create(productM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindByID retrieves a product with its categories.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Update rewrites the product's own columns and replaces its category links.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":  product.Name,
			"price": product.Price,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	categoryModels := make([]model.CategoryModel, 0, len(product.Categories))
	for _, category := range product.Categories {
		categoryModels = append(categoryModels, *fromCategoryDomain(&category))
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Association("Categories").
		Replace(categoryModels)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product categories")
	}

	return nil
}

// Delete removes a product together with its category, wishlist and cart
// references.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for _, stmt := range []string{
		"DELETE FROM product_categories WHERE product_id = ?",
		"DELETE FROM wishlist_products WHERE product_id = ?",
		"DELETE FROM cart_items WHERE product_id = ?",
	} {
		if err := repo.db.WithContext(ctx).Exec(stmt, id).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to unlink product references")
		}
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List returns one page of products in the requested order.
func (repo *productRepository) List(ctx context.Context, page pagination.Request) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Categories").
		Order(clause.OrderByColumn{Column: clause.Column{Name: page.SortField}, Desc: page.Desc}).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), nil
}

// Search returns one page of products matching every supplied filter.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductSearch, page pagination.Request) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Preload("Categories")

	if filter.Name != "" {
		query = query.Where("products.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.
			Joins("JOIN product_categories ON product_categories.product_id = products.id").
			Joins("JOIN categories ON categories.id = product_categories.category_id").
			Where("categories.name = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	var productModels []*model.ProductModel
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Table: "products", Name: page.SortField}, Desc: page.Desc}).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainSlice(productModels), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(data.Categories))
	for i := range data.Categories {
		categories = append(categories, *toCategoryDomain(&data.Categories[i]))
	}

	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Categories: categories,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	categories := make([]model.CategoryModel, 0, len(data.Categories))
	for i := range data.Categories {
		categories = append(categories, *fromCategoryDomain(&data.Categories[i]))
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Categories: categories,
	}
}
