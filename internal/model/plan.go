package model

import (
	"encoding/json"
	"time"
)

// WeeklyPlan is a weekly meal plan as submitted by the planner frontend.
// Meals is kept opaque: plan generators emit either an array of days or a
// map keyed by day name, and the aggregator accepts both.
type WeeklyPlan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	WeekStart    string          `json:"week_start"`
	WeekEnd      string          `json:"week_end"`
	WeeklyBudget float64         `json:"weekly_budget"`
	Meals        json.RawMessage `json:"meals"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MealSlot is a single meal with its recipe ingredient lines.
type MealSlot struct {
	Name        string   `json:"name,omitempty"`
	Ingredients []string `json:"ingredients"`
}

// DayMeals groups the meal slots of one day. Breakfast, lunch and dinner
// may each be null in the incoming plan.
type DayMeals struct {
	Breakfast *MealSlot  `json:"breakfast"`
	Lunch     *MealSlot  `json:"lunch"`
	Dinner    *MealSlot  `json:"dinner"`
	Snacks    []MealSlot `json:"snacks"`
}

// PlanDay is one day of a weekly plan.
type PlanDay struct {
	Day   string   `json:"day,omitempty"`
	Meals DayMeals `json:"meals"`
}
