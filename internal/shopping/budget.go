package shopping

import "github.com/semanalapp/semanal/internal/model"

// ReconcileBudget proportionally scales item prices so the total fits the
// weekly budget. It is a display-time transform: the input slice is never
// mutated and the result is recomputed on every read. Prices pass through
// unchanged when no budget is set or the total already fits; amounts,
// units and categories are never touched.
func ReconcileBudget(items []model.ShoppingListItem, weeklyBudget float64) []model.ShoppingListItem {
	out := make([]model.ShoppingListItem, len(items))
	copy(out, items)

	total := TotalCost(items)
	if weeklyBudget <= 0 || total <= weeklyBudget {
		return out
	}

	factor := weeklyBudget / total
	for i := range out {
		out[i].Price = round2(out[i].Price * factor)
	}
	return out
}

// TotalCost sums item prices.
func TotalCost(items []model.ShoppingListItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return round2(total)
}
