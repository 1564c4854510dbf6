package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/semanalapp/semanal/internal/model"
)

type PlanStore struct {
	db *sql.DB
}

func NewPlanStore(db *sql.DB) *PlanStore {
	return &PlanStore{db: db}
}

func scanPlan(scanner interface{ Scan(...any) error }) (*model.WeeklyPlan, error) {
	var p model.WeeklyPlan
	var meals string
	err := scanner.Scan(&p.ID, &p.Name, &p.Description, &p.WeekStart, &p.WeekEnd,
		&p.WeeklyBudget, &meals, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Meals = json.RawMessage(meals)
	return &p, nil
}

const planCols = `id, name, description, week_start, week_end, weekly_budget, meals, created_at`

func (s *PlanStore) Create(plan model.WeeklyPlan) (*model.WeeklyPlan, error) {
	meals := string(plan.Meals)
	if meals == "" {
		meals = "null"
	}
	_, err := s.db.Exec(
		`INSERT INTO weekly_plans (id, name, description, week_start, week_end, weekly_budget, meals) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Name, plan.Description, plan.WeekStart, plan.WeekEnd, plan.WeeklyBudget, meals,
	)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return s.GetByID(plan.ID)
}

func (s *PlanStore) GetByID(id string) (*model.WeeklyPlan, error) {
	row := s.db.QueryRow(`SELECT `+planCols+` FROM weekly_plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

func (s *PlanStore) List() ([]model.WeeklyPlan, error) {
	rows, err := s.db.Query(`SELECT ` + planCols + ` FROM weekly_plans ORDER BY week_start DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []model.WeeklyPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// Upsert stores a plan, replacing any previous version with the same ID.
// Resubmitting a plan is a full replace, mirroring the merge semantics of
// its shopping items.
func (s *PlanStore) Upsert(plan model.WeeklyPlan) (*model.WeeklyPlan, error) {
	meals := string(plan.Meals)
	if meals == "" {
		meals = "null"
	}
	_, err := s.db.Exec(
		`INSERT INTO weekly_plans (id, name, description, week_start, week_end, weekly_budget, meals) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description,
		 week_start = excluded.week_start, week_end = excluded.week_end,
		 weekly_budget = excluded.weekly_budget, meals = excluded.meals`,
		plan.ID, plan.Name, plan.Description, plan.WeekStart, plan.WeekEnd, plan.WeeklyBudget, meals,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert plan: %w", err)
	}
	return s.GetByID(plan.ID)
}

func (s *PlanStore) UpdateMetadata(id, name, description string) (*model.WeeklyPlan, error) {
	_, err := s.db.Exec(
		`UPDATE weekly_plans SET name = ?, description = ? WHERE id = ?`,
		name, description, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update plan metadata: %w", err)
	}
	return s.GetByID(id)
}

func (s *PlanStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM weekly_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
