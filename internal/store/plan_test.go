package store

import (
	"encoding/json"
	"testing"

	"github.com/semanalapp/semanal/internal/database"
	"github.com/semanalapp/semanal/internal/model"
)

func setupTestDB(t *testing.T) (*PlanStore, *ShoppingStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPlanStore(db), NewShoppingStore(db)
}

func testPlan(id string) model.WeeklyPlan {
	return model.WeeklyPlan{
		ID:           id,
		Name:         "Semana " + id,
		Description:  "plan de prueba",
		WeekStart:    "2026-09-07",
		WeekEnd:      "2026-09-13",
		WeeklyBudget: 50,
		Meals:        json.RawMessage(`[{"meals": {"lunch": {"ingredients": ["200 g pollo"]}, "snacks": []}}]`),
	}
}

func TestPlanCreateAndGet(t *testing.T) {
	ps, _ := setupTestDB(t)

	created, err := ps.Create(testPlan("p1"))
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if created.Name != "Semana p1" {
		t.Errorf("name = %q", created.Name)
	}
	if created.WeeklyBudget != 50 {
		t.Errorf("budget = %v, want 50", created.WeeklyBudget)
	}

	got, err := ps.GetByID("p1")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got == nil {
		t.Fatal("expected plan, got nil")
	}
	if string(got.Meals) == "" || string(got.Meals) == "null" {
		t.Errorf("meals not round-tripped: %q", got.Meals)
	}
}

func TestPlanGetMissing(t *testing.T) {
	ps, _ := setupTestDB(t)

	got, err := ps.GetByID("nope")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing plan, got %+v", got)
	}
}

func TestPlanUpsertReplaces(t *testing.T) {
	ps, _ := setupTestDB(t)

	if _, err := ps.Upsert(testPlan("p1")); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := testPlan("p1")
	updated.Name = "Semana nueva"
	got, err := ps.Upsert(updated)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if got.Name != "Semana nueva" {
		t.Errorf("name = %q, want Semana nueva", got.Name)
	}

	plans, err := ps.List()
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 1 {
		t.Errorf("expected 1 plan after upsert, got %d", len(plans))
	}
}

func TestPlanUpdateMetadata(t *testing.T) {
	ps, _ := setupTestDB(t)

	if _, err := ps.Create(testPlan("p1")); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	got, err := ps.UpdateMetadata("p1", "Renombrado", "otra descripción")
	if err != nil {
		t.Fatalf("update metadata: %v", err)
	}
	if got.Name != "Renombrado" || got.Description != "otra descripción" {
		t.Errorf("metadata = %q/%q", got.Name, got.Description)
	}
	if got.WeeklyBudget != 50 {
		t.Errorf("budget changed: %v", got.WeeklyBudget)
	}
}

func TestPlanDelete(t *testing.T) {
	ps, _ := setupTestDB(t)

	if _, err := ps.Create(testPlan("p1")); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if err := ps.Delete("p1"); err != nil {
		t.Fatalf("delete plan: %v", err)
	}

	got, err := ps.GetByID("p1")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got != nil {
		t.Error("plan should be gone")
	}
}
