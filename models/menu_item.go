package models

import "time"

type MenuItem struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         Money     `json:"price"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	IsFeatured    bool      `json:"is_featured"`
	DiscountBadge string    `json:"discount_badge"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name          *string
	Description   *string
	Price         *Money
	Category      *string
	Image         *string
	IsFeatured    *bool
	DiscountBadge *string
}

func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Image == nil && p.IsFeatured == nil && p.DiscountBadge == nil
}

func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.IsFeatured != nil {
		item.IsFeatured = *p.IsFeatured
	}
	if p.DiscountBadge != nil {
		item.DiscountBadge = *p.DiscountBadge
	}
}
