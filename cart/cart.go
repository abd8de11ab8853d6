// Package cart holds the quantity bookkeeping shared by guest and
// authenticated carts: a multiset of menu-item ids with add-or-increment,
// set, remove and clear, plus exact decimal pricing.
package cart

import "errors"

// MaxQuantity bounds a single line.
const MaxQuantity = 99

var (
	ErrInvalidItem   = errors.New("cart: invalid menu item id")
	ErrQuantityLimit = errors.New("cart: quantity exceeds limit of 99 per item")
)

type Line struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// Cart keeps at most one line per menu item. Lines are reported in order of
// first insertion.
type Cart struct {
	order []int
	qty   map[int]int
}

func New() *Cart {
	return &Cart{qty: make(map[int]int)}
}

// FromLines rebuilds a cart by merging every line, so duplicate ids collapse
// into one line capped at MaxQuantity. Lines with invalid ids are dropped.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		c.addCapped(l.MenuItemID, l.Quantity)
	}
	return c
}

// Add increments the line for id by qty, creating it if needed. A qty below 1
// counts as 1. The line is left untouched when the result would exceed
// MaxQuantity.
func (c *Cart) Add(id, qty int) error {
	if id <= 0 {
		return ErrInvalidItem
	}
	if qty < 1 {
		qty = 1
	}
	if qty > MaxQuantity-c.qty[id] {
		return ErrQuantityLimit
	}
	c.increment(id, qty)
	return nil
}

func (c *Cart) addCapped(id, qty int) {
	if id <= 0 {
		return
	}
	if qty < 1 {
		qty = 1
	}
	if room := MaxQuantity - c.qty[id]; qty > room {
		qty = room
	}
	if qty > 0 {
		c.increment(id, qty)
	}
}

func (c *Cart) increment(id, qty int) {
	if _, ok := c.qty[id]; !ok {
		c.order = append(c.order, id)
	}
	c.qty[id] += qty
}

// SetQuantity overrides the line quantity; qty <= 0 removes the line.
func (c *Cart) SetQuantity(id, qty int) error {
	if id <= 0 {
		return ErrInvalidItem
	}
	if qty > MaxQuantity {
		return ErrQuantityLimit
	}
	if qty <= 0 {
		c.Remove(id)
		return nil
	}
	if _, ok := c.qty[id]; !ok {
		c.order = append(c.order, id)
	}
	c.qty[id] = qty
	return nil
}

func (c *Cart) Remove(id int) {
	if _, ok := c.qty[id]; !ok {
		return
	}
	delete(c.qty, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.order = nil
	c.qty = make(map[int]int)
}

func (c *Cart) Quantity(id int) int {
	return c.qty[id]
}

func (c *Cart) Has(id int) bool {
	_, ok := c.qty[id]
	return ok
}

func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, q := range c.qty {
		total += q
	}
	return total
}

func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, Line{MenuItemID: id, Quantity: c.qty[id]})
	}
	return lines
}

// Merge folds other into c with the add-or-increment rule. Merged lines are
// capped at MaxQuantity rather than rejected.
func (c *Cart) Merge(other *Cart) {
	for _, l := range other.Lines() {
		c.addCapped(l.MenuItemID, l.Quantity)
	}
}
