package models

import "time"

type CartItem struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	MenuItemID int       `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CartLine is one rendered cart row. ID is the menu item id; CartID is the
// durable row id and is omitted for guest carts.
type CartLine struct {
	CartID      int    `json:"cart_id,omitempty"`
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       Money  `json:"price"`
	Quantity    int    `json:"quantity"`
	LineTotal   Money  `json:"line_total"`
}

type CartView struct {
	Items       []CartLine `json:"items"`
	Subtotal    Money      `json:"subtotal"`
	DeliveryFee Money      `json:"delivery_fee"`
	Total       Money      `json:"total"`
	TotalItems  int        `json:"total_items"`
}
