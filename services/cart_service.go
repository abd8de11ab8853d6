package services

import (
	"context"
	"errors"
	"fmt"

	"frydays/cart"
	"frydays/metrics"
	"frydays/models"
	"frydays/repositories"

	"github.com/shopspring/decimal"
)

type CartService struct {
	store       repositories.Store
	guests      repositories.GuestCartStore
	deliveryFee decimal.Decimal
}

func NewCartService(store repositories.Store, guests repositories.GuestCartStore, deliveryFee decimal.Decimal) *CartService {
	return &CartService{store: store, guests: guests, deliveryFee: deliveryFee}
}

// MergeResult reports how many guest lines landed in the user's cart and how
// many were dropped because their menu item no longer exists.
type MergeResult struct {
	Merged  int `json:"merged"`
	Skipped int `json:"skipped"`
}

func (s *CartService) View(ctx context.Context, userID int) (*models.CartView, error) {
	entries, err := s.store.Carts().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, models.CartLine{
			CartID:      e.Item.ID,
			ID:          e.MenuItem.ID,
			Name:        e.MenuItem.Name,
			Description: e.MenuItem.Description,
			Image:       e.MenuItem.Image,
			Price:       e.MenuItem.Price,
			Quantity:    e.Item.Quantity,
		})
	}
	return s.buildView(lines), nil
}

func (s *CartService) Add(ctx context.Context, userID, menuItemID, qty int) (*models.CartView, error) {
	if _, err := s.store.Carts().AddOrIncrement(ctx, userID, menuItemID, qty); err != nil {
		return nil, err
	}
	metrics.RecordCartMutation("user", "add")
	return s.View(ctx, userID)
}

func (s *CartService) SetQuantity(ctx context.Context, userID, cartItemID, qty int) (*models.CartView, error) {
	if err := s.store.Carts().SetQuantity(ctx, userID, cartItemID, qty); err != nil {
		return nil, err
	}
	metrics.RecordCartMutation("user", "set")
	return s.View(ctx, userID)
}

func (s *CartService) Remove(ctx context.Context, userID, cartItemID int) (*models.CartView, error) {
	if err := s.store.Carts().Remove(ctx, userID, cartItemID); err != nil {
		return nil, err
	}
	metrics.RecordCartMutation("user", "remove")
	return s.View(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	if err := s.store.Carts().Clear(ctx, userID); err != nil {
		return err
	}
	metrics.RecordCartMutation("user", "clear")
	return nil
}

// MergeGuest folds the guest session cart and any client-held lines into the
// user's durable cart with the add-or-increment rule, then drops the guest
// session.
func (s *CartService) MergeGuest(ctx context.Context, userID int, sessionID string, lines []cart.Line) (*MergeResult, error) {
	guest := cart.New()
	if sessionID != "" {
		stored, err := s.guests.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		guest.Merge(stored)
	}
	guest.Merge(cart.FromLines(lines))

	result := &MergeResult{}
	for _, l := range guest.Lines() {
		_, err := s.store.Carts().AddOrIncrement(ctx, userID, l.MenuItemID, l.Quantity)
		if errors.Is(err, cart.ErrQuantityLimit) {
			err = s.fillLine(ctx, userID, l.MenuItemID)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("merge guest line %d: %w", l.MenuItemID, err)
		}
		result.Merged++
	}

	if sessionID != "" {
		if err := s.guests.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	metrics.RecordCartMutation("user", "merge")
	metrics.RecordMergedLines(result.Merged)
	return result, nil
}

// fillLine raises an existing line to cart.MaxQuantity.
func (s *CartService) fillLine(ctx context.Context, userID, menuItemID int) error {
	line, err := s.store.Carts().FindLine(ctx, userID, menuItemID)
	if err != nil {
		return err
	}
	return s.store.Carts().SetQuantity(ctx, userID, line.ID, cart.MaxQuantity)
}

func (s *CartService) GuestView(ctx context.Context, sessionID string) (*models.CartView, error) {
	c, err := s.guests.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.priceGuest(ctx, c)
}

func (s *CartService) GuestAdd(ctx context.Context, sessionID string, menuItemID, qty int) (*models.CartView, error) {
	if _, err := s.store.MenuItems().FindByID(ctx, menuItemID); err != nil {
		return nil, err
	}
	return s.mutateGuest(ctx, sessionID, "add", func(c *cart.Cart) error {
		return c.Add(menuItemID, qty)
	})
}

func (s *CartService) GuestSetQuantity(ctx context.Context, sessionID string, menuItemID, qty int) (*models.CartView, error) {
	return s.mutateGuest(ctx, sessionID, "set", func(c *cart.Cart) error {
		if !c.Has(menuItemID) {
			return repositories.ErrNotFound
		}
		return c.SetQuantity(menuItemID, qty)
	})
}

func (s *CartService) GuestRemove(ctx context.Context, sessionID string, menuItemID int) (*models.CartView, error) {
	return s.mutateGuest(ctx, sessionID, "remove", func(c *cart.Cart) error {
		if !c.Has(menuItemID) {
			return repositories.ErrNotFound
		}
		c.Remove(menuItemID)
		return nil
	})
}

func (s *CartService) GuestClear(ctx context.Context, sessionID string) error {
	if err := s.guests.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.RecordCartMutation("guest", "clear")
	return nil
}

func (s *CartService) mutateGuest(ctx context.Context, sessionID, op string, fn func(*cart.Cart) error) (*models.CartView, error) {
	c, err := s.guests.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.guests.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	metrics.RecordCartMutation("guest", op)
	return s.priceGuest(ctx, c)
}

// priceGuest resolves guest lines against the current menu. Lines whose menu
// item has since been deleted are left out of the view.
func (s *CartService) priceGuest(ctx context.Context, c *cart.Cart) (*models.CartView, error) {
	guestLines := c.Lines()
	ids := make([]int, 0, len(guestLines))
	for _, l := range guestLines {
		ids = append(ids, l.MenuItemID)
	}

	items, err := s.store.MenuItems().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(guestLines))
	for _, l := range guestLines {
		item, ok := items[l.MenuItemID]
		if !ok {
			continue
		}
		lines = append(lines, models.CartLine{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
			Quantity:    l.Quantity,
		})
	}
	return s.buildView(lines), nil
}

func (s *CartService) buildView(lines []models.CartLine) *models.CartView {
	priced := make([]cart.PricedLine, len(lines))
	for i := range lines {
		priced[i] = cart.PricedLine{
			MenuItemID: lines[i].ID,
			Quantity:   lines[i].Quantity,
			UnitPrice:  lines[i].Price.Decimal,
		}
		lines[i].LineTotal = models.NewMoney(priced[i].Total())
	}

	summary := cart.Summarize(priced, s.deliveryFee)
	return &models.CartView{
		Items:       lines,
		Subtotal:    models.NewMoney(summary.Subtotal),
		DeliveryFee: models.NewMoney(summary.DeliveryFee),
		Total:       models.NewMoney(summary.Total),
		TotalItems:  summary.TotalItems,
	}
}
