package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/semanalapp/semanal/internal/model"
	"github.com/semanalapp/semanal/internal/shopping"
	"github.com/semanalapp/semanal/internal/store"
	ws "github.com/semanalapp/semanal/internal/websocket"
)

type PlanHandler struct {
	planStore     *store.PlanStore
	shoppingStore *store.ShoppingStore
	hub           *ws.Hub
	logger        *slog.Logger
}

func NewPlanHandler(ps *store.PlanStore, ss *store.ShoppingStore, hub *ws.Hub, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{planStore: ps, shoppingStore: ss, hub: hub, logger: logger}
}

type planRequest struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	WeekStart    string          `json:"week_start"`
	WeekEnd      string          `json:"week_end"`
	WeeklyBudget float64         `json:"weekly_budget"`
	Meals        json.RawMessage `json:"meals"`
}

// Submit stores a weekly plan, regenerates its shopping list and merges
// it into the global list. Submitting a plan with an existing ID replaces
// that plan's contribution instead of doubling it.
func (h *PlanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.WeeklyBudget < 0 {
		writeError(w, http.StatusBadRequest, "weekly_budget must not be negative")
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	plan, err := h.planStore.Upsert(model.WeeklyPlan{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		WeekStart:    req.WeekStart,
		WeekEnd:      req.WeekEnd,
		WeeklyBudget: req.WeeklyBudget,
		Meals:        req.Meals,
	})
	if err != nil {
		h.logger.Error("failed to save plan", "plan_id", req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save plan")
		return
	}

	items := shopping.AggregatePlan(*plan)
	if err := h.shoppingStore.MergePlanItems(plan.ID, items); err != nil {
		h.logger.Error("failed to merge shopping items", "plan_id", plan.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update shopping list")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityPlan, "submitted", plan.ID, map[string]any{
		"item_count": len(items),
	}))
	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingList, "refreshed", "", nil))

	view, err := h.buildPlanView(plan)
	if err != nil {
		h.logger.Error("failed to load shopping list", "plan_id", plan.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planStore.List()
	if err != nil {
		h.logger.Error("failed to list plans", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	if plans == nil {
		plans = []model.WeeklyPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, err := h.planStore.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Update renames a plan without resubmitting its meals. Provenance on the
// plan's shopping items is refreshed so the list keeps showing the new name.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.planStore.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	plan, err := h.planStore.UpdateMetadata(id, req.Name, req.Description)
	if err != nil {
		h.logger.Error("failed to update plan", "plan_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update plan")
		return
	}

	weekRange := shopping.FormatWeekRange(plan.WeekStart, plan.WeekEnd)
	notes := shopping.ProvenanceNote(plan.Name, weekRange)
	if _, err := h.shoppingStore.UpdateProvenance(id, plan.Name, weekRange, notes); err != nil {
		h.logger.Error("failed to refresh item provenance", "plan_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update plan")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityPlan, "updated", id, nil))
	writeJSON(w, http.StatusOK, plan)
}

// Delete removes a plan and every shopping item it contributed.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.planStore.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	removed, err := h.shoppingStore.DeleteByPlan(id)
	if err != nil {
		h.logger.Error("failed to remove plan items", "plan_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete plan")
		return
	}
	if err := h.planStore.Delete(id); err != nil {
		h.logger.Error("failed to delete plan", "plan_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete plan")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityPlan, "deleted", id, map[string]any{
		"removed_items": removed,
	}))
	h.hub.Broadcast(ws.NewMessage(ws.EntityShoppingList, "refreshed", "", nil))

	w.WriteHeader(http.StatusNoContent)
}

// ShoppingList returns the per-plan shopping list view, budget reconciled.
func (h *PlanHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
	plan, err := h.planStore.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	view, err := h.buildPlanView(plan)
	if err != nil {
		h.logger.Error("failed to load shopping list", "plan_id", plan.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *PlanHandler) buildPlanView(plan *model.WeeklyPlan) (*model.ShoppingListPlan, error) {
	items, err := h.shoppingStore.ListItemsByPlan(plan.ID)
	if err != nil {
		return nil, err
	}
	items = shopping.ReconcileBudget(items, plan.WeeklyBudget)

	completed := 0
	for _, it := range items {
		if it.IsChecked {
			completed++
		}
	}
	if items == nil {
		items = []model.ShoppingListItem{}
	}

	return &model.ShoppingListPlan{
		ID:              "shopping-" + plan.ID,
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		PlanDescription: plan.Description,
		WeekStart:       plan.WeekStart,
		WeekEnd:         plan.WeekEnd,
		Items:           items,
		TotalItems:      len(items),
		TotalCost:       shopping.TotalCost(items),
		CompletedItems:  completed,
	}, nil
}
