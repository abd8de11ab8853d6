package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"frydays/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidFilter  = errors.New("invalid filter")
)

// Store groups the typed repositories backing the API. PostgresStore and
// MemoryStore are interchangeable implementations.
type Store interface {
	Users() UserRepository
	MenuItems() MenuItemRepository
	Promotions() PromotionRepository
	Carts() CartRepository
	Close()
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	// Create stores a new non-admin user and fills in its generated fields.
	Create(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int, error)
}

type MenuItemRepository interface {
	FindAll(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int) (*models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []int) (map[int]models.MenuItem, error)
	// Create stores a new, never featured, menu item and fills in its
	// generated fields.
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type PromotionRepository interface {
	FindAll(ctx context.Context, filter PromotionFilter) ([]models.Promotion, error)
	FindByID(ctx context.Context, id int) (*models.Promotion, error)
	Create(ctx context.Context, promo *models.Promotion) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CartEntry is a durable cart row joined with the menu item it references.
type CartEntry struct {
	Item     models.CartItem
	MenuItem models.MenuItem
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID int) ([]CartEntry, error)
	FindLine(ctx context.Context, userID, menuItemID int) (*models.CartItem, error)
	// AddOrIncrement atomically creates the (user, menu item) line or adds qty
	// to the existing one. A missing menu item is ErrNotFound.
	AddOrIncrement(ctx context.Context, userID, menuItemID, qty int) (*models.CartItem, error)
	// SetQuantity overrides the quantity of the user's line; qty <= 0 deletes it.
	SetQuantity(ctx context.Context, userID, cartItemID, qty int) error
	Remove(ctx context.Context, userID, cartItemID int) error
	Clear(ctx context.Context, userID int) error
}

var categoryPattern = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)

type MenuFilter struct {
	FeaturedOnly bool
	Category     string
}

func (f MenuFilter) Normalize() (MenuFilter, error) {
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	if f.Category != "" && !categoryPattern.MatchString(f.Category) {
		return f, fmt.Errorf("%w: category %q", ErrInvalidFilter, f.Category)
	}
	return f, nil
}

func (f MenuFilter) Matches(item *models.MenuItem) bool {
	if f.FeaturedOnly && !item.IsFeatured {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	return true
}

type PromotionFilter struct {
	Slot string
}

func (f PromotionFilter) Normalize() (PromotionFilter, error) {
	f.Slot = strings.TrimSpace(f.Slot)
	if f.Slot != "" && !models.IsPromoSlot(f.Slot) {
		return f, fmt.Errorf("%w: promotion slot %q", ErrInvalidFilter, f.Slot)
	}
	return f, nil
}
