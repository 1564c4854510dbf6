package shopping

import (
	"strings"

	"github.com/semanalapp/semanal/internal/model"
)

// PlanMeta carries the provenance of the plan being merged.
type PlanMeta struct {
	ID        string
	Name      string
	WeekStart string
	WeekEnd   string
}

// MergePlan folds one plan's freshly aggregated items into the global
// shopping list and returns the new list. Semantics are replace-on-resubmit:
// every existing contribution of the same plan is purged first, so merging
// the same plan twice is idempotent. New items matching an existing entry
// on (lowercased name, category) are summed into it; provenance on a merged
// entry reflects the most recently merged plan, not every contributor.
func MergePlan(global []model.ShoppingListItem, items []model.ShoppingListItem, meta PlanMeta) []model.ShoppingListItem {
	merged := make([]model.ShoppingListItem, 0, len(global)+len(items))
	for _, it := range global {
		if it.SourcePlan == meta.ID {
			continue
		}
		merged = append(merged, it)
	}

	weekRange := FormatWeekRange(meta.WeekStart, meta.WeekEnd)
	for _, item := range items {
		idx := findMatch(merged, item.Name, item.Category)
		if idx < 0 {
			merged = append(merged, item)
			continue
		}

		existing := &merged[idx]
		existing.Amount = round2(existing.Amount + item.Amount)
		existing.Price = round2(existing.Price + item.Price)
		existing.SourcePlan = meta.ID
		existing.PlanName = meta.Name
		existing.WeekRange = weekRange
		existing.Notes = ProvenanceNote(meta.Name, weekRange)
	}
	return merged
}

func findMatch(items []model.ShoppingListItem, name, category string) int {
	lower := strings.ToLower(name)
	for i := range items {
		if strings.ToLower(items[i].Name) == lower && items[i].Category == category {
			return i
		}
	}
	return -1
}
