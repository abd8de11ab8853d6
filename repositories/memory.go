package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"frydays/cart"
	"frydays/models"
)

// MemoryStore is the process-local Store used when no database is
// configured. Every instance owns its data; a single mutex guards all of it.
type MemoryStore struct {
	mu sync.Mutex

	users      map[int]models.User
	menuItems  map[int]models.MenuItem
	promotions map[int]models.Promotion
	cartItems  map[int]models.CartItem

	nextUserID      int
	nextMenuItemID  int
	nextPromotionID int
	nextCartItemID  int

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:           make(map[int]models.User),
		menuItems:       make(map[int]models.MenuItem),
		promotions:      make(map[int]models.Promotion),
		cartItems:       make(map[int]models.CartItem),
		nextUserID:      1,
		nextMenuItemID:  1,
		nextPromotionID: 1,
		nextCartItemID:  1,
		now:             time.Now,
	}
}

func (s *MemoryStore) Users() UserRepository           { return memoryUsers{s} }
func (s *MemoryStore) MenuItems() MenuItemRepository   { return memoryMenuItems{s} }
func (s *MemoryStore) Promotions() PromotionRepository { return memoryPromotions{s} }
func (s *MemoryStore) Carts() CartRepository           { return memoryCarts{s} }
func (s *MemoryStore) Close()                          {}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) FindByID(ctx context.Context, id int) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r memoryUsers) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	now := r.s.now()
	user.ID = r.s.nextUserID
	user.IsAdmin = false
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r memoryUsers) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.users), nil
}

type memoryMenuItems struct{ s *MemoryStore }

func (r memoryMenuItems) FindAll(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := []models.MenuItem{}
	for _, id := range sortedKeys(r.s.menuItems) {
		item := r.s.menuItems[id]
		if filter.Matches(&item) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r memoryMenuItems) FindByID(ctx context.Context, id int) (*models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r memoryMenuItems) FindByIDs(ctx context.Context, ids []int) (map[int]models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := make(map[int]models.MenuItem, len(ids))
	for _, id := range ids {
		if item, ok := r.s.menuItems[id]; ok {
			found[id] = item
		}
	}
	return found, nil
}

func (r memoryMenuItems) Create(ctx context.Context, item *models.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	item.ID = r.s.nextMenuItemID
	item.IsFeatured = false
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.nextMenuItemID++
	r.s.menuItems[item.ID] = *item
	return nil
}

func (r memoryMenuItems) Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&item)
	item.UpdatedAt = r.s.now()
	r.s.menuItems[id] = item
	return &item, nil
}

// Delete also drops cart lines referencing the item, mirroring the
// ON DELETE CASCADE of the SQL schema.
func (r memoryMenuItems) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menuItems[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.menuItems, id)
	for cid, ci := range r.s.cartItems {
		if ci.MenuItemID == id {
			delete(r.s.cartItems, cid)
		}
	}
	return nil
}

func (r memoryMenuItems) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.menuItems), nil
}

type memoryPromotions struct{ s *MemoryStore }

func (r memoryPromotions) FindAll(ctx context.Context, filter PromotionFilter) ([]models.Promotion, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	promos := []models.Promotion{}
	for _, id := range sortedKeys(r.s.promotions) {
		p := r.s.promotions[id]
		if filter.Slot == "" || p.PromoType == filter.Slot {
			promos = append(promos, p)
		}
	}
	return promos, nil
}

func (r memoryPromotions) FindByID(ctx context.Context, id int) (*models.Promotion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.promotions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r memoryPromotions) Create(ctx context.Context, p *models.Promotion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.PromoType == "" {
		p.PromoType = models.PromoSlotPromoPage
	}
	p.ID = r.s.nextPromotionID
	p.CreatedAt = r.s.now()
	r.s.nextPromotionID++
	r.s.promotions[p.ID] = *p
	return nil
}

func (r memoryPromotions) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.promotions[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.promotions, id)
	return nil
}

func (r memoryPromotions) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.promotions), nil
}

type memoryCarts struct{ s *MemoryStore }

func (r memoryCarts) ListByUser(ctx context.Context, userID int) ([]CartEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := []CartEntry{}
	for _, id := range sortedKeys(r.s.cartItems) {
		ci := r.s.cartItems[id]
		if ci.UserID != userID {
			continue
		}
		item, ok := r.s.menuItems[ci.MenuItemID]
		if !ok {
			continue
		}
		entries = append(entries, CartEntry{Item: ci, MenuItem: item})
	}
	return entries, nil
}

func (r memoryCarts) FindLine(ctx context.Context, userID, menuItemID int) (*models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ci, ok := r.s.findLine(userID, menuItemID); ok {
		return &ci, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) findLine(userID, menuItemID int) (models.CartItem, bool) {
	for _, ci := range s.cartItems {
		if ci.UserID == userID && ci.MenuItemID == menuItemID {
			return ci, true
		}
	}
	return models.CartItem{}, false
}

func (r memoryCarts) AddOrIncrement(ctx context.Context, userID, menuItemID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	if qty > cart.MaxQuantity {
		return nil, cart.ErrQuantityLimit
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menuItems[menuItemID]; !ok {
		return nil, ErrNotFound
	}
	if _, ok := r.s.users[userID]; !ok {
		return nil, ErrNotFound
	}

	now := r.s.now()
	ci, ok := r.s.findLine(userID, menuItemID)
	if ok {
		if ci.Quantity+qty > cart.MaxQuantity {
			return nil, cart.ErrQuantityLimit
		}
		ci.Quantity += qty
		ci.UpdatedAt = now
	} else {
		ci = models.CartItem{
			ID:         r.s.nextCartItemID,
			UserID:     userID,
			MenuItemID: menuItemID,
			Quantity:   qty,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		r.s.nextCartItemID++
	}
	r.s.cartItems[ci.ID] = ci
	return &ci, nil
}

func (r memoryCarts) SetQuantity(ctx context.Context, userID, cartItemID, qty int) error {
	if qty <= 0 {
		return r.Remove(ctx, userID, cartItemID)
	}
	if qty > cart.MaxQuantity {
		return cart.ErrQuantityLimit
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ci, ok := r.s.cartItems[cartItemID]
	if !ok || ci.UserID != userID {
		return ErrNotFound
	}
	ci.Quantity = qty
	ci.UpdatedAt = r.s.now()
	r.s.cartItems[cartItemID] = ci
	return nil
}

func (r memoryCarts) Remove(ctx context.Context, userID, cartItemID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ci, ok := r.s.cartItems[cartItemID]
	if !ok || ci.UserID != userID {
		return ErrNotFound
	}
	delete(r.s.cartItems, cartItemID)
	return nil
}

func (r memoryCarts) Clear(ctx context.Context, userID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, ci := range r.s.cartItems {
		if ci.UserID == userID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}
