package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/semanalapp/semanal/internal/model"
	"github.com/semanalapp/semanal/internal/shopping"
	"github.com/semanalapp/semanal/internal/store"
	ws "github.com/semanalapp/semanal/internal/websocket"
)

type ShoppingHandler struct {
	shoppingStore *store.ShoppingStore
	planStore     *store.PlanStore
	hub           *ws.Hub
	logger        *slog.Logger
}

func NewShoppingHandler(ss *store.ShoppingStore, ps *store.PlanStore, hub *ws.Hub, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{shoppingStore: ss, planStore: ps, hub: hub, logger: logger}
}

type shoppingListResponse struct {
	Items          []model.ShoppingListItem `json:"items"`
	TotalItems     int                      `json:"total_items"`
	TotalCost      float64                  `json:"total_cost"`
	CompletedItems int                      `json:"completed_items"`
}

// List returns the global merged shopping list. Prices are reconciled
// against each contributing plan's own weekly budget.
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.reconciledItems()
	if err != nil {
		h.logger.Error("failed to load shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}

	completed := 0
	for _, it := range items {
		if it.IsChecked {
			completed++
		}
	}

	writeJSON(w, http.StatusOK, shoppingListResponse{
		Items:          items,
		TotalItems:     len(items),
		TotalCost:      shopping.TotalCost(items),
		CompletedItems: completed,
	})
}

func (h *ShoppingHandler) ToggleChecked(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.shoppingStore.ToggleChecked(id)
	if err != nil {
		h.logger.Error("failed to toggle checked", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle checked")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	action := "unchecked"
	if item.IsChecked {
		action = "checked"
	}
	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingItem, action, item.ID, nil))

	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.shoppingStore.GetItemByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.shoppingStore.DeleteItem(id); err != nil {
		h.logger.Error("failed to delete item", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingItem, "deleted", id, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShoppingHandler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	count, err := h.shoppingStore.ClearChecked()
	if err != nil {
		h.logger.Error("failed to clear checked items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear checked")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingList, "refreshed", "", nil))
	writeJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}

func (h *ShoppingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	count, err := h.shoppingStore.ClearAll()
	if err != nil {
		h.logger.Error("failed to clear shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear list")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingList, "refreshed", "", nil))
	writeJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}

// ExportCSV writes the reconciled global list as a CSV download.
func (h *ShoppingHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	items, err := h.reconciledItems()
	if err != nil {
		h.logger.Error("failed to load shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lista-de-compra.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Nombre", "Cantidad", "Unidad", "Categoría", "Precio", "Comprado", "Plan", "Semana"})
	for _, it := range items {
		checked := "no"
		if it.IsChecked {
			checked = "sí"
		}
		cw.Write([]string{
			it.Name,
			strconv.FormatFloat(it.Amount, 'f', -1, 64),
			it.Unit,
			it.Category,
			strconv.FormatFloat(it.Price, 'f', 2, 64),
			checked,
			it.PlanName,
			it.WeekRange,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("failed to write CSV export", "error", err)
	}
}

// reconciledItems loads every item and scales prices per contributing
// plan so each plan's slice of the list fits that plan's weekly budget.
// Order is preserved; items without a known plan pass through untouched.
func (h *ShoppingHandler) reconciledItems() ([]model.ShoppingListItem, error) {
	items, err := h.shoppingStore.ListItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []model.ShoppingListItem{}, nil
	}

	plans, err := h.planStore.List()
	if err != nil {
		return nil, err
	}
	budgets := make(map[string]float64, len(plans))
	for _, p := range plans {
		budgets[p.ID] = p.WeeklyBudget
	}

	groups := make(map[string][]int)
	for i, it := range items {
		groups[it.SourcePlan] = append(groups[it.SourcePlan], i)
	}

	for planID, idxs := range groups {
		budget, ok := budgets[planID]
		if !ok || budget <= 0 {
			continue
		}
		group := make([]model.ShoppingListItem, len(idxs))
		for j, i := range idxs {
			group[j] = items[i]
		}
		group = shopping.ReconcileBudget(group, budget)
		for j, i := range idxs {
			items[i] = group[j]
		}
	}

	return items, nil
}
