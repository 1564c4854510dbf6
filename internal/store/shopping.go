package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/semanalapp/semanal/internal/model"
)

type ShoppingStore struct {
	db *sql.DB
}

func NewShoppingStore(db *sql.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

func scanShoppingItem(scanner interface{ Scan(...any) error }) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	var sourcePlan sql.NullString
	var checked int

	err := scanner.Scan(
		&item.ID, &item.Name, &item.Amount, &item.Unit, &item.Category,
		&item.Price, &checked, &item.Notes, &sourcePlan, &item.PlanName,
		&item.WeekRange, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.IsChecked = checked != 0
	if sourcePlan.Valid {
		item.SourcePlan = sourcePlan.String
	}
	return &item, nil
}

const shoppingItemCols = `id, name, amount, unit, category, price, is_checked, notes, source_plan, plan_name, week_range, created_at`

func (s *ShoppingStore) GetItemByID(id string) (*model.ShoppingListItem, error) {
	row := s.db.QueryRow(`SELECT `+shoppingItemCols+` FROM shopping_items WHERE id = ?`, id)
	item, err := scanShoppingItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *ShoppingStore) ListItems() ([]model.ShoppingListItem, error) {
	return s.queryItems(`SELECT ` + shoppingItemCols + ` FROM shopping_items ORDER BY is_checked ASC, category ASC, name ASC`)
}

func (s *ShoppingStore) ListItemsByPlan(planID string) ([]model.ShoppingListItem, error) {
	return s.queryItems(
		`SELECT `+shoppingItemCols+` FROM shopping_items WHERE source_plan = ? ORDER BY is_checked ASC, category ASC, name ASC`,
		planID,
	)
}

func (s *ShoppingStore) queryItems(query string, args ...any) ([]model.ShoppingListItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.ShoppingListItem
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// MergePlanItems applies a plan's freshly aggregated items to the stored
// global list, transactionally: the plan's previous contributions are
// purged first (replace-on-resubmit), then each new item is either summed
// into an existing entry matching on (lowercased name, category) or
// inserted. Checked state is user data and survives re-aggregation: an
// incoming item whose ID was checked before the purge comes back checked.
func (s *ShoppingStore) MergePlanItems(planID string, items []model.ShoppingListItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin merge: %w", err)
	}
	defer tx.Rollback()

	checked, err := checkedItemIDs(tx, planID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM shopping_items WHERE source_plan = ?`, planID); err != nil {
		return fmt.Errorf("purge plan items: %w", err)
	}

	for _, item := range items {
		var existingID string
		err := tx.QueryRow(
			`SELECT id FROM shopping_items WHERE lower(name) = ? AND category = ?`,
			strings.ToLower(item.Name), item.Category,
		).Scan(&existingID)

		switch {
		case err == sql.ErrNoRows:
			isChecked := 0
			if checked[item.ID] || item.IsChecked {
				isChecked = 1
			}
			_, err = tx.Exec(
				`INSERT INTO shopping_items (id, name, amount, unit, category, price, is_checked, notes, source_plan, plan_name, week_range)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, item.Name, item.Amount, item.Unit, item.Category,
				item.Price, isChecked, item.Notes, item.SourcePlan,
				item.PlanName, item.WeekRange,
			)
			if err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
		case err != nil:
			return fmt.Errorf("find matching item: %w", err)
		default:
			// The existing entry keeps its unit, matching the pure merge.
			_, err = tx.Exec(
				`UPDATE shopping_items
				 SET amount = round(amount + ?, 2), price = round(price + ?, 2),
				     notes = ?, source_plan = ?, plan_name = ?, week_range = ?
				 WHERE id = ?`,
				item.Amount, item.Price, item.Notes,
				item.SourcePlan, item.PlanName, item.WeekRange, existingID,
			)
			if err != nil {
				return fmt.Errorf("merge item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge: %w", err)
	}
	return nil
}

func checkedItemIDs(tx *sql.Tx, planID string) (map[string]bool, error) {
	rows, err := tx.Query(`SELECT id FROM shopping_items WHERE source_plan = ? AND is_checked = 1`, planID)
	if err != nil {
		return nil, fmt.Errorf("list checked items: %w", err)
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan checked id: %w", err)
		}
		checked[id] = true
	}
	return checked, rows.Err()
}

func (s *ShoppingStore) ToggleChecked(id string) (*model.ShoppingListItem, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	next := 1
	if item.IsChecked {
		next = 0
	}
	if _, err := s.db.Exec(`UPDATE shopping_items SET is_checked = ? WHERE id = ?`, next, id); err != nil {
		return nil, fmt.Errorf("toggle checked: %w", err)
	}
	return s.GetItemByID(id)
}

func (s *ShoppingStore) DeleteItem(id string) error {
	_, err := s.db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *ShoppingStore) DeleteByPlan(planID string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_items WHERE source_plan = ?`, planID)
	if err != nil {
		return 0, fmt.Errorf("delete plan items: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

func (s *ShoppingStore) ClearChecked() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_items WHERE is_checked = 1`)
	if err != nil {
		return 0, fmt.Errorf("clear checked: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

func (s *ShoppingStore) ClearAll() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_items`)
	if err != nil {
		return 0, fmt.Errorf("clear all: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

// UpdateProvenance refreshes the plan name on a plan's items after its
// metadata changes.
func (s *ShoppingStore) UpdateProvenance(planID, planName, weekRange, notes string) (int64, error) {
	result, err := s.db.Exec(
		`UPDATE shopping_items SET plan_name = ?, week_range = ?, notes = ? WHERE source_plan = ?`,
		planName, weekRange, notes, planID,
	)
	if err != nil {
		return 0, fmt.Errorf("update provenance: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
