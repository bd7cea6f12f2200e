package store

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/workbench/pkg/types"
)

// AddCategory inserts a category into the shared catalog and returns it
// with the generated id. Category names are unique; inserting an
// existing name is a constraint failure.
func (s *Store) AddCategory(c types.Category) (types.Category, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO category (category_name) VALUES (?)", c.Name,
		)
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading generated category id: %w", err)
		}
		c.ID = id
		return nil
	})
	if err != nil {
		return types.Category{}, err
	}
	return c, nil
}

// FetchCategories returns the full category catalog ordered by name.
func (s *Store) FetchCategories() ([]types.Category, error) {
	var categories []types.Category

	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(
			"SELECT category_id, category_name FROM category ORDER BY category_name",
		)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c types.Category
			if err := rows.Scan(&c.ID, &c.Name); err != nil {
				return fmt.Errorf("scanning category: %w", err)
			}
			categories = append(categories, c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []types.Category{}
	}
	return categories, nil
}

// AssignCategory links an existing category to an existing project
// through the association table. Linking by an unknown category name
// returns a wrapped ErrCategoryNotFound; an already-linked pair is a
// no-op.
func (s *Store) AssignCategory(projectID int64, categoryName string) error {
	return s.withTx(func(tx *sql.Tx) error {
		var categoryID int64
		err := tx.QueryRow(
			"SELECT category_id FROM category WHERE category_name = ?", categoryName,
		).Scan(&categoryID)
		if err != nil {
			if err == sql.ErrNoRows {
				return fmt.Errorf("category %q: %w", categoryName, types.ErrCategoryNotFound)
			}
			return fmt.Errorf("looking up category %q: %w", categoryName, err)
		}

		_, err = tx.Exec(
			"INSERT OR IGNORE INTO project_category (project_id, category_id) VALUES (?, ?)",
			projectID, categoryID,
		)
		if err != nil {
			return fmt.Errorf("linking project %d to category %d: %w", projectID, categoryID, err)
		}
		return nil
	})
}
