package model

import "time"

// ShoppingListItem is one deduplicated entry on a shopping list.
// ID is stable within its plan scope (plan ID plus slugified name).
// Amount and Price are always non-negative; IsChecked is user state and is
// never reset by aggregation itself.
type ShoppingListItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	IsChecked  bool      `json:"is_checked"`
	Notes      string    `json:"notes,omitempty"`
	SourcePlan string    `json:"source_plan,omitempty"`
	PlanName   string    `json:"plan_name,omitempty"`
	WeekRange  string    `json:"week_range,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShoppingListPlan is the per-plan shopping list view returned to clients.
type ShoppingListPlan struct {
	ID              string             `json:"id"`
	PlanID          string             `json:"plan_id"`
	PlanName        string             `json:"plan_name"`
	PlanDescription string             `json:"plan_description"`
	WeekStart       string             `json:"week_start"`
	WeekEnd         string             `json:"week_end"`
	Items           []ShoppingListItem `json:"items"`
	TotalItems      int                `json:"total_items"`
	TotalCost       float64            `json:"total_cost"`
	CompletedItems  int                `json:"completed_items"`
}
