package store

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/workbench/pkg/types"
)

// AddMaterial inserts a material row for an existing project and returns
// it with the generated id. A missing project surfaces as a foreign-key
// failure from the store.
func (s *Store) AddMaterial(m types.Material) (types.Material, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)",
			m.ProjectID, m.Name, m.NumRequired, m.Cost,
		)
		if err != nil {
			return fmt.Errorf("inserting material for project %d: %w", m.ProjectID, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading generated material id: %w", err)
		}
		m.ID = id
		return nil
	})
	if err != nil {
		return types.Material{}, err
	}
	return m, nil
}
