package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=2"`
}

type LoginRequest struct {
	Email       string            `json:"email" binding:"required,email"`
	Password    string            `json:"password" binding:"required"`
	GuestCartID string            `json:"guest_cart_id" binding:"omitempty,uuid"`
	GuestCart   []CartLineRequest `json:"guest_cart" binding:"omitempty,dive"`
}

type CreateMenuItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         *Money `json:"price" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Image         string `json:"image" binding:"required"`
	DiscountBadge string `json:"discount_badge"`
}

type UpdateMenuItemRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *Money  `json:"price"`
	Category      *string `json:"category"`
	Image         *string `json:"image"`
	IsFeatured    *bool   `json:"is_featured"`
	DiscountBadge *string `json:"discount_badge"`
}

func (r UpdateMenuItemRequest) Patch() MenuItemPatch {
	return MenuItemPatch{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Category:      r.Category,
		Image:         r.Image,
		IsFeatured:    r.IsFeatured,
		DiscountBadge: r.DiscountBadge,
	}
}

type CreatePromotionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *Money `json:"price" binding:"required"`
	Image       string `json:"image" binding:"required"`
	PromoType   string `json:"promo_type" binding:"omitempty,oneof=highlight_1 highlight_2 highlight_3 promo_page"`
}

type CartLineRequest struct {
	MenuItemID int `json:"menu_item_id" binding:"required,gt=0"`
	Quantity   int `json:"quantity" binding:"gte=0,lte=99"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,lte=99"`
}

type MergeCartRequest struct {
	GuestCartID string            `json:"guest_cart_id" binding:"omitempty,uuid"`
	Items       []CartLineRequest `json:"items" binding:"omitempty,dive"`
}

type ContactRequest struct {
	Name    string `json:"user_name" binding:"required"`
	Email   string `json:"user_email" binding:"required,email"`
	Phone   string `json:"user_phone"`
	Subject string `json:"user_subject" binding:"required"`
	Message string `json:"user_message" binding:"required"`
}
