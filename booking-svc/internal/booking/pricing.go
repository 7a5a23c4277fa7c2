// Package booking holds the pure rules behind a table reservation: chair
// selection, pre-orders, pricing and status changes. Nothing here does I/O.
package booking

import "tablebook/booking-svc/internal/domain"

// DoubleChairPrice is the surcharge per double chair. Single and high chairs are free.
const DoubleChairPrice = 20.0

func TotalChairs(sel domain.ChairSelection) int {
	return sel.Single + sel.Double + sel.High
}

func ChairCost(sel domain.ChairSelection) float64 {
	return float64(sel.Double) * DoubleChairPrice
}

// UpdateChairCount returns sel with one chair of the given type added or
// removed. Counts never drop below zero and unknown types leave sel unchanged.
func UpdateChairCount(sel domain.ChairSelection, chair domain.ChairType, increment bool) domain.ChairSelection {
	var count *int
	switch chair {
	case domain.ChairSingle:
		count = &sel.Single
	case domain.ChairDouble:
		count = &sel.Double
	case domain.ChairHigh:
		count = &sel.High
	default:
		return sel
	}

	if increment {
		*count++
	} else if *count > 0 {
		*count--
	}
	return sel
}

// AddPreOrder bumps the quantity of an existing line or appends the item with quantity 1.
func AddPreOrder(list []domain.PreOrder, item domain.PreOrder) []domain.PreOrder {
	out := make([]domain.PreOrder, 0, len(list)+1)
	found := false
	for _, p := range list {
		if p.ItemID == item.ItemID {
			p.Quantity++
			found = true
		}
		out = append(out, p)
	}
	if !found {
		item.Quantity = 1
		out = append(out, item)
	}
	return out
}

// RemovePreOrder decrements the matching line and drops lines that reach zero.
func RemovePreOrder(list []domain.PreOrder, itemID string) []domain.PreOrder {
	out := make([]domain.PreOrder, 0, len(list))
	for _, p := range list {
		if p.ItemID == itemID && p.Quantity > 0 {
			p.Quantity--
		}
		if p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}

func PreOrderTotal(list []domain.PreOrder) float64 {
	var total float64
	for _, p := range list {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

func Quote(tablePrice float64, chairs domain.ChairSelection, preOrders []domain.PreOrder) domain.Quote {
	q := domain.Quote{
		TablePrice:    tablePrice,
		ChairCost:     ChairCost(chairs),
		PreOrderTotal: PreOrderTotal(preOrders),
	}
	q.Total = q.TablePrice + q.ChairCost + q.PreOrderTotal
	return q
}

func PaymentMethodName(method string) string {
	switch method {
	case "jazzcash":
		return "JazzCash"
	case "easypaisa":
		return "EasyPaisa"
	case "card":
		return "Card"
	case "cash":
		return "Cash"
	default:
		return method
	}
}
