// This file implements the project aggregate operations: insert, summary
// listing, full aggregate fetch, update, and delete. Each operation is
// one transaction; the aggregate fetch issues all four of its reads
// inside that single transaction so the returned project is a consistent
// snapshot.
package store

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/workbench/pkg/types"
)

// InsertProject inserts the five scalar fields of a new project, reads
// back the generated id, and returns the project with the id set. The
// input is not mutated.
func (s *Store) InsertProject(p types.Project) (types.Project, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, ?, ?, ?, ?)",
			p.Name, p.EstimatedHours, p.ActualHours, p.Difficulty, p.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting project: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading generated project id: %w", err)
		}
		p.ID = id
		return nil
	})
	if err != nil {
		return types.Project{}, err
	}
	return p, nil
}

// FetchAllProjects returns the scalar fields of every project, ordered
// by project name at the storage layer. No related collections are
// loaded; this is the summary listing.
func (s *Store) FetchAllProjects() ([]types.Project, error) {
	var projects []types.Project

	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(
			"SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes FROM project ORDER BY project_name",
		)
		if err != nil {
			return fmt.Errorf("fetching projects: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return fmt.Errorf("scanning project: %w", err)
			}
			projects = append(projects, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []types.Project{}
	}
	return projects, nil
}

// FetchProjectByID returns the full aggregate for the given id. The
// found flag is false when no project row matches; a partial aggregate
// is never returned. The project row and its three child queries share
// one transaction.
func (s *Store) FetchProjectByID(id int64) (project types.Project, found bool, err error) {
	err = s.withTx(func(tx *sql.Tx) error {
		row := tx.QueryRow(
			"SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes FROM project WHERE project_id = ?",
			id,
		)
		p, err := scanProject(row)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return fmt.Errorf("fetching project %d: %w", id, err)
		}

		if p.Materials, err = fetchMaterialsForProject(tx, id); err != nil {
			return err
		}
		if p.Steps, err = fetchStepsForProject(tx, id); err != nil {
			return err
		}
		if p.Categories, err = fetchCategoriesForProject(tx, id); err != nil {
			return err
		}

		project = p
		found = true
		return nil
	})
	if err != nil {
		return types.Project{}, false, err
	}
	return project, found, nil
}

// UpdateProject replaces all five scalar fields of the row matching the
// project's id. Returns whether exactly one row was affected; deciding
// what a miss means is the service layer's job.
func (s *Store) UpdateProject(p types.Project) (bool, error) {
	var updated bool

	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"UPDATE project SET project_name = ?, estimated_hours = ?, actual_hours = ?, difficulty = ?, notes = ? WHERE project_id = ?",
			p.Name, p.EstimatedHours, p.ActualHours, p.Difficulty, p.Notes, p.ID,
		)
		if err != nil {
			return fmt.Errorf("updating project %d: %w", p.ID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows: %w", err)
		}
		updated = affected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// DeleteProject removes the project row matching id. Dependent material,
// step, and category-association rows are removed by the schema's
// cascade rules. Same rows-affected contract as UpdateProject.
func (s *Store) DeleteProject(id int64) (bool, error) {
	var deleted bool

	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM project WHERE project_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting project %d: %w", id, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows: %w", err)
		}
		deleted = affected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// fetchMaterialsForProject loads the material rows for one project,
// oldest first.
func fetchMaterialsForProject(tx *sql.Tx, projectID int64) ([]types.Material, error) {
	rows, err := tx.Query(
		"SELECT material_id, project_id, material_name, num_required, cost FROM material WHERE project_id = ? ORDER BY material_id",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching materials for project %d: %w", projectID, err)
	}
	defer rows.Close()

	materials := []types.Material{}
	for rows.Next() {
		var m types.Material
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.NumRequired, &m.Cost); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return materials, nil
}

// fetchStepsForProject loads the step rows for one project in step
// order.
func fetchStepsForProject(tx *sql.Tx, projectID int64) ([]types.Step, error) {
	rows, err := tx.Query(
		"SELECT step_id, project_id, step_text, step_order FROM step WHERE project_id = ? ORDER BY step_order",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching steps for project %d: %w", projectID, err)
	}
	defer rows.Close()

	steps := []types.Step{}
	for rows.Next() {
		var st types.Step
		if err := rows.Scan(&st.ID, &st.ProjectID, &st.Text, &st.Order); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating steps: %w", err)
	}
	return steps, nil
}

// fetchCategoriesForProject loads the categories linked to one project
// through the project_category association table.
func fetchCategoriesForProject(tx *sql.Tx, projectID int64) ([]types.Category, error) {
	rows, err := tx.Query(
		"SELECT c.category_id, c.category_name FROM category c JOIN project_category pc ON pc.category_id = c.category_id WHERE pc.project_id = ? ORDER BY c.category_id",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching categories for project %d: %w", projectID, err)
	}
	defer rows.Close()

	categories := []types.Category{}
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProject materializes one project row, field by field in column
// order. Collections are left nil; the aggregate fetch attaches them.
func scanProject(row rowScanner) (types.Project, error) {
	var p types.Project
	err := row.Scan(&p.ID, &p.Name, &p.EstimatedHours, &p.ActualHours, &p.Difficulty, &p.Notes)
	if err != nil {
		return types.Project{}, err
	}
	return p, nil
}
