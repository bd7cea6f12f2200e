// This file seeds the category catalog on first run.
package store

import (
	"database/sql"
	"fmt"
)

// seedCategoryNames is the standard catalog created when the category
// table is empty. Users extend it with AddCategory.
var seedCategoryNames = []string{
	"Doors and Windows",
	"Electrical",
	"Gardening",
	"Outdoor Spaces",
	"Plumbing",
	"Repairs and Maintenance",
}

// seedCategories inserts the standard categories if the catalog is
// empty. Idempotent: a non-empty catalog is left untouched.
func (s *Store) seedCategories() error {
	return s.withTx(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM category").Scan(&count); err != nil {
			return fmt.Errorf("counting categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, name := range seedCategoryNames {
			if _, err := tx.Exec("INSERT INTO category (category_name) VALUES (?)", name); err != nil {
				return fmt.Errorf("seeding category %q: %w", name, err)
			}
		}
		return nil
	})
}
