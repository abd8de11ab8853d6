package repositories

import (
	"fmt"
	"time"

	"frydays/models"
	"frydays/utils"
)

// DemoPassword is the password of both seeded accounts.
const DemoPassword = "123456"

var (
	seedUsers = []models.User{
		{Email: "admin@frydays.com", Username: "Admin Fryday", IsAdmin: true},
		{Email: "user@teste.com", Username: "Usuário Teste"},
	}

	seedMenuItems = []models.MenuItem{
		{
			Name:          "Clássico Fryday's",
			Description:   "Pão brioche, burger bovino 150g, queijo cheddar, alface, tomate e molho especial da casa.",
			Price:         models.MustParseMoney("25.90"),
			Category:      "hamburgueres",
			Image:         "https://i.ibb.co/pWcQ5Nt/burger-card.png",
			IsFeatured:    true,
			DiscountBadge: "50% OFF",
		},
		{
			Name:        "Duplo Bacon Paradise",
			Description: "Pão australiano, 2x burgers bovinos 100g, dobro de queijo cheddar, bacon crocante e cebola caramelizada.",
			Price:       models.MustParseMoney("32.50"),
			Category:    "hamburgueres",
			Image:       "https://i.ibb.co/yqM0kXk/promo-double-burger.png",
		},
		{
			Name:        "Pepperoni Clássica",
			Description: "Molho de tomate artesanal, muçarela de primeira e fatias generosas de pepperoni.",
			Price:       models.MustParseMoney("45.00"),
			Category:    "pizzas",
			Image:       "https://i.ibb.co/qCB7P9k/pizza-card.png",
			IsFeatured:  true,
		},
		{
			Name:          "Hot Dog Delícia",
			Description:   "Salsicha especial, molho da casa, purê de batata, milho e queijo ralado.",
			Price:         models.MustParseMoney("15.00"),
			Category:      "lanches",
			Image:         "https://i.ibb.co/bQ489wV/hotdog-card.png",
			IsFeatured:    true,
			DiscountBadge: "Combo!",
		},
		{
			Name:        "Fritas Crocantes",
			Description: "Batata frita tradicional, extra crocante e com tempero especial.",
			Price:       models.MustParseMoney("12.00"),
			Category:    "acompanhamentos",
			Image:       "https://i.ibb.co/fC9r4G6/fries-card.png",
			IsFeatured:  true,
		},
		{
			Name:        "Refrigerante Lata",
			Description: "Coca-Cola, Guaraná, Fanta (350ml)",
			Price:       models.MustParseMoney("5.00"),
			Category:    "bebidas",
			Image:       "https://via.placeholder.com/150x150/3498db/ffffff?text=Refrigerante",
		},
	}

	seedPromotions = []models.Promotion{
		{
			Title:       "DOIS SUPER SMASH BURGERS",
			Description: "Leve dois Smash Burgers por um preço inacreditável!",
			Price:       models.MustParseMoney("29.99"),
			Image:       "https://i.ibb.co/yqM0kXk/promo-double-burger.png",
			PromoType:   models.PromoSlotHighlight1,
		},
		{
			Title:       "Fritas de Brinde",
			Description: "Em pedidos acima de R$ 40, ganhe uma batata frita de brinde!",
			Price:       models.MustParseMoney("0"),
			Image:       "https://i.ibb.co/fC9r4G6/fries-card.png",
			PromoType:   models.PromoSlotHighlight2,
		},
		{
			Title:       "Hot Dog Day",
			Description: "Todo sabor do nosso hot dog especial com precinho camarada!",
			Price:       models.MustParseMoney("15.00"),
			Image:       "https://i.ibb.co/bQ489wV/hotdog-card.png",
			PromoType:   models.PromoSlotHighlight3,
		},
		{
			Title:       "Combo Pizza Família",
			Description: "1 Pizza Grande (sabores selecionados) + 1 Refri 2L. De R$ 65,00 por R$ 55,00",
			Price:       models.MustParseMoney("55.00"),
			Image:       "https://via.placeholder.com/300x180/e74c3c/ffffff?text=Pizza+G+Refri",
			PromoType:   models.PromoSlotPromoPage,
		},
	}
)

// NewSeededMemoryStore returns a MemoryStore holding the demo catalogue and
// the two demo accounts (admin@frydays.com is the administrator).
func NewSeededMemoryStore() (*MemoryStore, error) {
	s := NewMemoryStore()

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	now := time.Now()
	for _, u := range seedUsers {
		u.ID = s.nextUserID
		u.Password = hash
		u.CreatedAt = now
		u.UpdatedAt = now
		s.users[u.ID] = u
		s.nextUserID++
	}
	for _, item := range seedMenuItems {
		item.ID = s.nextMenuItemID
		item.CreatedAt = now
		item.UpdatedAt = now
		s.menuItems[item.ID] = item
		s.nextMenuItemID++
	}
	for _, p := range seedPromotions {
		p.ID = s.nextPromotionID
		p.CreatedAt = now
		s.promotions[p.ID] = p
		s.nextPromotionID++
	}
	return s, nil
}
