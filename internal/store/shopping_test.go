package store

import (
	"testing"

	"github.com/semanalapp/semanal/internal/model"
)

func testItem(id, name, category, sourcePlan string, amount, price float64) model.ShoppingListItem {
	return model.ShoppingListItem{
		ID:         id,
		Name:       name,
		Amount:     amount,
		Unit:       "paquete",
		Category:   category,
		Price:      price,
		SourcePlan: sourcePlan,
		PlanName:   "Plan " + sourcePlan,
		WeekRange:  "2026-09-07 - 2026-09-13",
	}
}

func TestMergePlanItemsInsertAndList(t *testing.T) {
	_, ss := setupTestDB(t)

	items := []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
		testItem("p-arroz", "Arroz", "Granos y Cereales", "p", 1, 1.50),
	}
	if err := ss.MergePlanItems("p", items); err != nil {
		t.Fatalf("merge plan items: %v", err)
	}

	got, err := ss.ListItems()
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for _, it := range got {
		if it.IsChecked {
			t.Errorf("new item %s should start unchecked", it.ID)
		}
	}
}

func TestMergePlanItemsReplaceOnResubmit(t *testing.T) {
	_, ss := setupTestDB(t)

	first := []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
		testItem("p-arroz", "Arroz", "Granos y Cereales", "p", 1, 1.50),
	}
	if err := ss.MergePlanItems("p", first); err != nil {
		t.Fatalf("first merge: %v", err)
	}

	// Resubmit with arroz edited out and lentejas added.
	second := []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
		testItem("p-lentejas", "Lentejas", "Legumbres", "p", 1, 1.80),
	}
	if err := ss.MergePlanItems("p", second); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	got, err := ss.ListItems()
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items after resubmit, got %d", len(got))
	}

	names := make(map[string]model.ShoppingListItem)
	for _, it := range got {
		names[it.Name] = it
	}
	if _, ok := names["Arroz"]; ok {
		t.Error("Arroz should have been purged on resubmit")
	}
	// No doubling of the unedited item.
	if names["Pollo"].Amount != 1 || names["Pollo"].Price != 4.50 {
		t.Errorf("Pollo = %v/%v, want 1/4.50", names["Pollo"].Amount, names["Pollo"].Price)
	}
}

func TestMergePlanItemsSumsAcrossPlans(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("a", []model.ShoppingListItem{
		testItem("a-pollo", "Pollo", "Carnes y Aves", "a", 1, 4.50),
	}); err != nil {
		t.Fatalf("merge plan a: %v", err)
	}
	if err := ss.MergePlanItems("b", []model.ShoppingListItem{
		testItem("b-pollo", "pollo", "Carnes y Aves", "b", 1, 4.50),
	}); err != nil {
		t.Fatalf("merge plan b: %v", err)
	}

	got, err := ss.ListItems()
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 merged item, got %d", len(got))
	}
	if got[0].Amount != 2 || got[0].Price != 9.00 {
		t.Errorf("merged = %v/%v, want 2/9.00", got[0].Amount, got[0].Price)
	}
	// Provenance follows the most recent contributor.
	if got[0].SourcePlan != "b" || got[0].PlanName != "Plan b" {
		t.Errorf("provenance = %q/%q, want b/Plan b", got[0].SourcePlan, got[0].PlanName)
	}
}

func TestMergePlanItemsKeepsExistingUnit(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("a", []model.ShoppingListItem{
		testItem("a-arroz", "Arroz", "Granos y Cereales", "a", 1, 1.50),
	}); err != nil {
		t.Fatalf("merge plan a: %v", err)
	}

	incoming := testItem("b-arroz", "Arroz", "Granos y Cereales", "b", 2, 1.50)
	incoming.Unit = "g"
	if err := ss.MergePlanItems("b", []model.ShoppingListItem{incoming}); err != nil {
		t.Fatalf("merge plan b: %v", err)
	}

	got, err := ss.GetItemByID("a-arroz")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got == nil {
		t.Fatal("merged item missing")
	}
	if got.Unit != "paquete" {
		t.Errorf("unit = %q, want %q (existing unit survives a merge)", got.Unit, "paquete")
	}
	if got.Amount != 3 {
		t.Errorf("amount = %v, want 3", got.Amount)
	}
}

func TestMergePlanItemsPreservesCheckedState(t *testing.T) {
	_, ss := setupTestDB(t)

	items := []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
	}
	if err := ss.MergePlanItems("p", items); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := ss.ToggleChecked("p-pollo"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Re-aggregate the same plan: the checked flag must survive.
	if err := ss.MergePlanItems("p", items); err != nil {
		t.Fatalf("re-merge: %v", err)
	}

	got, err := ss.GetItemByID("p-pollo")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got == nil || !got.IsChecked {
		t.Error("checked state lost on re-aggregation")
	}
}

func TestToggleChecked(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("p", []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
	}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	item, err := ss.ToggleChecked("p-pollo")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !item.IsChecked {
		t.Error("expected checked after first toggle")
	}

	item, err = ss.ToggleChecked("p-pollo")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if item.IsChecked {
		t.Error("expected unchecked after second toggle")
	}
}

func TestToggleCheckedMissing(t *testing.T) {
	_, ss := setupTestDB(t)

	item, err := ss.ToggleChecked("nope")
	if err != nil {
		t.Fatalf("toggle missing: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestClearCheckedAndClearAll(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("p", []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
		testItem("p-arroz", "Arroz", "Granos y Cereales", "p", 1, 1.50),
	}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := ss.ToggleChecked("p-pollo"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	cleared, err := ss.ClearChecked()
	if err != nil {
		t.Fatalf("clear checked: %v", err)
	}
	if cleared != 1 {
		t.Errorf("cleared = %d, want 1", cleared)
	}

	cleared, err = ss.ClearAll()
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if cleared != 1 {
		t.Errorf("cleared = %d, want 1", cleared)
	}

	got, _ := ss.ListItems()
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d items", len(got))
	}
}

func TestDeleteByPlanCascade(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("p", []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
	}); err != nil {
		t.Fatalf("merge p: %v", err)
	}
	if err := ss.MergePlanItems("q", []model.ShoppingListItem{
		testItem("q-leche", "Leche", "Lácteos y Huevos", "q", 1, 1.10),
	}); err != nil {
		t.Fatalf("merge q: %v", err)
	}

	count, err := ss.DeleteByPlan("p")
	if err != nil {
		t.Fatalf("delete by plan: %v", err)
	}
	if count != 1 {
		t.Errorf("deleted = %d, want 1", count)
	}

	got, _ := ss.ListItems()
	if len(got) != 1 || got[0].Name != "Leche" {
		t.Errorf("unexpected remaining items: %+v", got)
	}
}

func TestUpdateProvenance(t *testing.T) {
	_, ss := setupTestDB(t)

	if err := ss.MergePlanItems("p", []model.ShoppingListItem{
		testItem("p-pollo", "Pollo", "Carnes y Aves", "p", 1, 4.50),
	}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	count, err := ss.UpdateProvenance("p", "Nuevo nombre", "2026-09-14 - 2026-09-20", "Plan: Nuevo nombre")
	if err != nil {
		t.Fatalf("update provenance: %v", err)
	}
	if count != 1 {
		t.Errorf("updated = %d, want 1", count)
	}

	got, _ := ss.GetItemByID("p-pollo")
	if got.PlanName != "Nuevo nombre" {
		t.Errorf("plan name = %q", got.PlanName)
	}
}
