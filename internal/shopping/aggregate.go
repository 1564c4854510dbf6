// Package shopping folds the ingredient lines of weekly meal plans into
// deduplicated, priced shopping list items, merges items across plans and
// applies display-time budget reconciliation. All functions are pure over
// in-memory data and never fail on malformed input.
package shopping

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/semanalapp/semanal/internal/ingredient"
	"github.com/semanalapp/semanal/internal/model"
)

// accumulator tracks the running raw total for one distinct ingredient
// within an aggregation pass.
type accumulator struct {
	name    string
	rawQty  float64
	rawUnit string
}

// AggregatePlan walks a weekly plan's day/meal structure and produces one
// ShoppingListItem per distinct ingredient (case-insensitive name match).
// Duplicate occurrences sum their raw quantities and the purchase quantity
// is recomputed from the running total, never adjusted incrementally.
// A missing or malformed meals structure yields an empty list, not an error.
func AggregatePlan(plan model.WeeklyPlan) []model.ShoppingListItem {
	days := decodeDays(plan.Meals)
	if len(days) == 0 {
		return []model.ShoppingListItem{}
	}

	byName := make(map[string]*accumulator)
	var order []string

	addLine := func(raw string) {
		if strings.TrimSpace(raw) == "" {
			return
		}
		line := ingredient.Parse(raw)
		if line.Name == "" {
			return
		}
		key := strings.ToLower(line.Name)
		acc, ok := byName[key]
		if !ok {
			acc = &accumulator{name: line.Name, rawUnit: line.Unit}
			byName[key] = acc
			order = append(order, key)
		}
		acc.rawQty += line.Quantity
	}

	for _, day := range days {
		for _, slot := range []*model.MealSlot{day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner} {
			if slot == nil {
				continue
			}
			for _, raw := range slot.Ingredients {
				addLine(raw)
			}
		}
		for _, snack := range day.Meals.Snacks {
			for _, raw := range snack.Ingredients {
				addLine(raw)
			}
		}
	}

	weekRange := FormatWeekRange(plan.WeekStart, plan.WeekEnd)
	items := make([]model.ShoppingListItem, 0, len(order))
	for _, key := range order {
		acc := byName[key]
		norm := ingredient.NormalizeQuantity(acc.name, acc.rawQty, acc.rawUnit)
		items = append(items, model.ShoppingListItem{
			ID:         plan.ID + "-" + Slugify(acc.name),
			Name:       acc.name,
			Amount:     round2(norm.Quantity),
			Unit:       norm.Unit,
			Category:   ingredient.Categorize(acc.name),
			Price:      ingredient.EstimatePrice(acc.name),
			Notes:      ProvenanceNote(plan.Name, weekRange),
			SourcePlan: plan.ID,
			PlanName:   plan.Name,
			WeekRange:  weekRange,
			CreatedAt:  time.Now().UTC(),
		})
	}
	return items
}

// decodeDays accepts the two shapes plan generators emit for meals: an
// array of day objects or a map keyed by day name. Anything else is
// treated as an empty plan.
func decodeDays(meals json.RawMessage) []model.PlanDay {
	if len(meals) == 0 {
		return nil
	}

	var asList []model.PlanDay
	if err := json.Unmarshal(meals, &asList); err == nil {
		return asList
	}

	var asMap map[string]model.PlanDay
	if err := json.Unmarshal(meals, &asMap); err == nil {
		days := make([]model.PlanDay, 0, len(asMap))
		for name, day := range asMap {
			if day.Day == "" {
				day.Day = name
			}
			days = append(days, day)
		}
		return days
	}

	return nil
}

// Slugify lowercases a name and reduces it to hyphen-separated alphanumeric
// runs, for use in stable item IDs.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r > 127:
			// Keep accented letters as-is; IDs stay readable.
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FormatWeekRange renders a "start - end" label, tolerating empty bounds.
func FormatWeekRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

// ProvenanceNote renders the item note shown for a contributing plan.
func ProvenanceNote(planName, weekRange string) string {
	if planName == "" {
		return ""
	}
	if weekRange == "" {
		return "Plan: " + planName
	}
	return fmt.Sprintf("Plan: %s · %s", planName, weekRange)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
