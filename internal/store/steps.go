package store

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/workbench/pkg/types"
)

// AddStep inserts a step row for an existing project and returns it with
// the generated id. When the step's Order is zero it is placed after the
// project's current last step.
func (s *Store) AddStep(st types.Step) (types.Step, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		if st.Order == 0 {
			var maxOrder sql.NullInt64
			err := tx.QueryRow(
				"SELECT MAX(step_order) FROM step WHERE project_id = ?", st.ProjectID,
			).Scan(&maxOrder)
			if err != nil {
				return fmt.Errorf("reading last step order for project %d: %w", st.ProjectID, err)
			}
			st.Order = int(maxOrder.Int64) + 1
		}

		res, err := tx.Exec(
			"INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)",
			st.ProjectID, st.Text, st.Order,
		)
		if err != nil {
			return fmt.Errorf("inserting step for project %d: %w", st.ProjectID, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading generated step id: %w", err)
		}
		st.ID = id
		return nil
	})
	if err != nil {
		return types.Step{}, err
	}
	return st, nil
}
