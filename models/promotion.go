package models

import "time"

const (
	PromoSlotHighlight1 = "highlight_1"
	PromoSlotHighlight2 = "highlight_2"
	PromoSlotHighlight3 = "highlight_3"
	PromoSlotPromoPage  = "promo_page"
)

var PromoSlots = []string{PromoSlotHighlight1, PromoSlotHighlight2, PromoSlotHighlight3, PromoSlotPromoPage}

func IsPromoSlot(slot string) bool {
	for _, s := range PromoSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type Promotion struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	Image       string    `json:"image"`
	PromoType   string    `json:"promo_type"`
	CreatedAt   time.Time `json:"created_at"`
}
