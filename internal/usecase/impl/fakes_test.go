package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/pagination"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- transaction fakes ---

type memFactory struct {
	categories *memCategoryRepo
	products   *memProductRepo
	wishlists  *memWishlistRepo
	users      *memUserRepo
	carts      *memCartRepo
	addresses  *memAddressRepo
}

func newMemFactory() *memFactory {
	return &memFactory{
		categories: &memCategoryRepo{},
		products:   &memProductRepo{},
		wishlists:  &memWishlistRepo{},
		users:      &memUserRepo{},
		carts:      &memCartRepo{},
		addresses:  &memAddressRepo{},
	}
}

func (f *memFactory) CategoryRepo() repository.CategoryRepository { return f.categories }
func (f *memFactory) ProductRepo() repository.ProductRepository   { return f.products }
func (f *memFactory) WishlistRepo() repository.WishlistRepository { return f.wishlists }
func (f *memFactory) UserRepo() repository.UserRepository         { return f.users }
func (f *memFactory) CartRepo() repository.CartRepository         { return f.carts }
func (f *memFactory) AddressRepo() repository.AddressRepository   { return f.addresses }

// memTxManager runs the unit of work directly against the shared in-memory
// repositories. Rollback is not modeled; tests asserting failure check state
// explicitly.
type memTxManager struct {
	factory *memFactory
}

func (m *memTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- category repository fake ---

type memCategoryRepo struct {
	mu         sync.Mutex
	categories []*entity.Category
	findCalls  int
	listCalls  int
}

func (r *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	stored := *category
	r.categories = append(r.categories, &stored)

	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	for _, category := range r.categories {
		if category.ID == id {
			copied := *category

			return &copied, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.categories {
		if category.Name == name {
			copied := *category

			return &copied, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByName(ctx, name)
	if err == nil {
		return true, nil
	}

	return false, nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.categories {
		if stored.ID == category.ID {
			stored.Name = category.Name

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.categories {
		if stored.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) List(_ context.Context, page pagination.Request) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++

	return pageSlice(r.categories, page), nil
}

// --- product repository fake ---

type memProductRepo struct {
	mu        sync.Mutex
	products  []*entity.Product
	listCalls int
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	stored := *product
	r.products = append(r.products, &stored)

	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.ID == id {
			copied := *product

			return &copied, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.products {
		if stored.ID == product.ID {
			copied := *product
			r.products[i] = &copied

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.products {
		if stored.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (r *memProductRepo) List(_ context.Context, page pagination.Request) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++

	return pageSlice(r.products, page), nil
}

func (r *memProductRepo) Search(_ context.Context, filter repository.ProductSearch, page pagination.Request) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if filter.MinPrice != nil && product.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && product.Price > *filter.MaxPrice {
			continue
		}
		matched = append(matched, product)
	}

	return pageSlice(matched, page), nil
}

// --- wishlist repository fake ---

type memWishlistRepo struct {
	mu        sync.Mutex
	wishlists []*entity.Wishlist
	products  map[uuid.UUID][]entity.Product
}

func (r *memWishlistRepo) Create(_ context.Context, wishlist *entity.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if wishlist.ID == uuid.Nil {
		wishlist.ID = uuid.New()
	}
	stored := *wishlist
	r.wishlists = append(r.wishlists, &stored)

	return nil
}

func (r *memWishlistRepo) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wishlist := range r.wishlists {
		if wishlist.ID == id && wishlist.OwnerID == ownerID {
			copied := *wishlist
			copied.Products = append([]entity.Product(nil), r.products[id]...)

			return &copied, nil
		}
	}

	return nil, repository.ErrWishlistNotFound
}

func (r *memWishlistRepo) FindByNameAndOwner(_ context.Context, name string, ownerID uuid.UUID) (*entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wishlist := range r.wishlists {
		if wishlist.Name == name && wishlist.OwnerID == ownerID {
			copied := *wishlist
			copied.Products = append([]entity.Product(nil), r.products[wishlist.ID]...)

			return &copied, nil
		}
	}

	return nil, repository.ErrWishlistNotFound
}

func (r *memWishlistRepo) ExistsByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (bool, error) {
	_, err := r.FindByNameAndOwner(ctx, name, ownerID)

	return err == nil, nil
}

func (r *memWishlistRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, wishlist := range r.wishlists {
		if wishlist.OwnerID == ownerID {
			count++
		}
	}

	return count, nil
}

func (r *memWishlistRepo) Rename(_ context.Context, id uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wishlist := range r.wishlists {
		if wishlist.ID == id {
			wishlist.Name = name

			return nil
		}
	}

	return repository.ErrWishlistNotFound
}

func (r *memWishlistRepo) AddProduct(_ context.Context, wishlistID, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.products == nil {
		r.products = make(map[uuid.UUID][]entity.Product)
	}
	for _, linked := range r.products[wishlistID] {
		if linked.ID == productID {
			return nil
		}
	}
	r.products[wishlistID] = append(r.products[wishlistID], entity.Product{ID: productID})

	return nil
}

func (r *memWishlistRepo) RemoveProduct(_ context.Context, wishlistID, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	linked := r.products[wishlistID]
	for i, product := range linked {
		if product.ID == productID {
			r.products[wishlistID] = append(linked[:i], linked[i+1:]...)

			return nil
		}
	}

	return nil
}

func (r *memWishlistRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, wishlist := range r.wishlists {
		if wishlist.ID == id {
			r.wishlists = append(r.wishlists[:i], r.wishlists[i+1:]...)
			delete(r.products, id)

			return nil
		}
	}

	return repository.ErrWishlistNotFound
}

func (r *memWishlistRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.wishlists[:0]
	for _, wishlist := range r.wishlists {
		if wishlist.OwnerID == ownerID {
			delete(r.products, wishlist.ID)

			continue
		}
		kept = append(kept, wishlist)
	}
	r.wishlists = kept

	return nil
}

func (r *memWishlistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, page pagination.Request) ([]*entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := make([]*entity.Wishlist, 0, len(r.wishlists))
	for _, wishlist := range r.wishlists {
		if wishlist.OwnerID == ownerID {
			owned = append(owned, wishlist)
		}
	}

	return pageSlice(owned, page), nil
}

// --- user repository fake ---

type memUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users = append(r.users, &stored)

	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Login == login })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUserRepo) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	_, err := r.FindByLogin(ctx, login)

	return err == nil, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)

	return err == nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.users {
		if stored.ID == user.ID {
			copied := *user
			r.users[i] = &copied

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.users {
		if stored.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if match(user) {
			copied := *user
			if user.Otp != nil {
				otp := *user.Otp
				copied.Otp = &otp
			}

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// --- cart repository fake ---

type memCartRepo struct {
	mu    sync.Mutex
	carts []*entity.ShoppingCart
	items []*entity.CartItem
}

func (r *memCartRepo) Create(_ context.Context, cart *entity.ShoppingCart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	stored := *cart
	r.carts = append(r.carts, &stored)

	return nil
}

func (r *memCartRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*entity.ShoppingCart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.OwnerID == ownerID {
			copied := *cart
			copied.Items = nil
			for _, item := range r.items {
				if item.CartID == cart.ID {
					line := *item
					line.CartOwnerID = cart.OwnerID
					copied.Items = append(copied.Items, line)
				}
			}

			return &copied, nil
		}
	}

	return nil, repository.ErrCartNotFound
}

func (r *memCartRepo) Touch(_ context.Context, cartID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.UpdatedAt = at

			return nil
		}
	}

	return repository.ErrCartNotFound
}

func (r *memCartRepo) AddItem(_ context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	stored := *item
	r.items = append(r.items, &stored)

	return nil
}

func (r *memCartRepo) FindItemByID(_ context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == itemID {
			copied := *item
			for _, cart := range r.carts {
				if cart.ID == item.CartID {
					copied.CartOwnerID = cart.OwnerID
				}
			}

			return &copied, nil
		}
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *memCartRepo) FindItemByCartAndProduct(_ context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.CartID == cartID && item.Product.ID == productID {
			copied := *item

			return &copied, nil
		}
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *memCartRepo) UpdateItemQuantity(_ context.Context, itemID uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == itemID {
			item.Quantity = quantity

			return nil
		}
	}

	return repository.ErrCartItemNotFound
}

func (r *memCartRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrCartItemNotFound
}

func (r *memCartRepo) ClearItems(_ context.Context, cartID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, item := range r.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	r.items = kept

	return nil
}

func (r *memCartRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cart := range r.carts {
		if cart.OwnerID == ownerID {
			kept := r.items[:0]
			for _, item := range r.items {
				if item.CartID != cart.ID {
					kept = append(kept, item)
				}
			}
			r.items = kept
			r.carts = append(r.carts[:i], r.carts[i+1:]...)

			return nil
		}
	}

	return nil
}

// --- address repository fake ---

type memAddressRepo struct {
	mu        sync.Mutex
	addresses []*entity.Address
}

func (r *memAddressRepo) Create(_ context.Context, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	stored := *address
	r.addresses = append(r.addresses, &stored)

	return nil
}

func (r *memAddressRepo) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.ID == id && address.OwnerID == ownerID {
			copied := *address

			return &copied, nil
		}
	}

	return nil, repository.ErrAddressNotFound
}

func (r *memAddressRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := make([]*entity.Address, 0, len(r.addresses))
	for _, address := range r.addresses {
		if address.OwnerID == ownerID {
			copied := *address
			owned = append(owned, &copied)
		}
	}

	return owned, nil
}

func (r *memAddressRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	owned, _ := r.ListByOwner(ctx, ownerID)

	return int64(len(owned)), nil
}

func (r *memAddressRepo) Update(_ context.Context, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.addresses {
		if stored.ID == address.ID {
			copied := *address
			r.addresses[i] = &copied

			return nil
		}
	}

	return repository.ErrAddressNotFound
}

func (r *memAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.addresses {
		if stored.ID == id {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)

			return nil
		}
	}

	return repository.ErrAddressNotFound
}

func (r *memAddressRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.addresses[:0]
	for _, address := range r.addresses {
		if address.OwnerID != ownerID {
			kept = append(kept, address)
		}
	}
	r.addresses = kept

	return nil
}

// --- domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

type fakeTokenService struct {
	token string
}

func (f *fakeTokenService) Generate(uuid.UUID, []string) (string, error) { return f.token, nil }

func (f *fakeTokenService) Validate(string) (*service.TokenClaims, error) {
	return nil, errors.New("not supported")
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration { return 15 * time.Minute }

type fakeOtpIssuer struct {
	code  string
	valid bool
}

func (f *fakeOtpIssuer) Generate() entity.OneTimePassword {
	return entity.OneTimePassword{Code: f.code, GeneratedAt: time.Now()}
}

func (f *fakeOtpIssuer) IsValid(otp *entity.OneTimePassword) bool {
	return otp != nil && f.valid
}

type fakeMailer struct {
	mu       sync.Mutex
	sent     []string
	failNext bool
	err      error
}

func (m *fakeMailer) SendVerificationCode(_ context.Context, email, code string) error {
	return m.record("verify", email, code)
}

func (m *fakeMailer) SendPasswordResetCode(_ context.Context, email, code string) error {
	return m.record("reset", email, code)
}

func (m *fakeMailer) record(kind, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false

		return m.err
	}
	m.sent = append(m.sent, kind+":"+email+":"+code)

	return nil
}

// pageSlice applies offset/limit paging to a slice of pointers.
func pageSlice[T any](items []*T, page pagination.Request) []*T {
	start := page.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}

	out := make([]*T, end-start)
	copy(out, items[start:end])

	return out
}
