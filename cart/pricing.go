package cart

import "github.com/shopspring/decimal"

var DefaultDeliveryFee = decimal.RequireFromString("5.00")

type PricedLine struct {
	MenuItemID int
	Quantity   int
	UnitPrice  decimal.Decimal
}

func (l PricedLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Summary struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	TotalItems  int
}

// Summarize prices a set of lines. The delivery fee only applies to a
// non-empty cart; an empty cart totals zero.
func Summarize(lines []PricedLine, deliveryFee decimal.Decimal) Summary {
	s := Summary{Subtotal: decimal.Zero, DeliveryFee: decimal.Zero, Total: decimal.Zero}
	for _, l := range lines {
		s.Subtotal = s.Subtotal.Add(l.Total())
		s.TotalItems += l.Quantity
	}
	if s.TotalItems == 0 {
		return s
	}
	s.DeliveryFee = deliveryFee
	s.Total = s.Subtotal.Add(deliveryFee)
	return s
}
