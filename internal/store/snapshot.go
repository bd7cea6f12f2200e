// This file implements JSONL snapshot export and import. A snapshot is
// one file: a header record carrying a snapshot id and timestamp,
// followed by one record per row across all five tables, parents before
// children. All reads (or writes, on import) happen in one transaction,
// so a snapshot is as consistent as any other aggregate operation.
package store

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/workbench/pkg/types"
)

// snapshotFormat is bumped when the record layout changes.
const snapshotFormat = 1

// snapshotHeader is the first line of every snapshot file.
type snapshotHeader struct {
	SnapshotID string `json:"snapshot_id"`
	ExportedAt string `json:"exported_at"`
	Format     int    `json:"format"`
}

// snapshotRecord wraps one table row. Table names match the schema.
type snapshotRecord struct {
	Table string          `json:"table"`
	Row   json.RawMessage `json:"row"`
}

// Row record shapes, json-tagged with the column names.
type projectRow struct {
	ProjectID      int64  `json:"project_id"`
	ProjectName    string `json:"project_name"`
	EstimatedHours string `json:"estimated_hours"`
	ActualHours    string `json:"actual_hours"`
	Difficulty     int    `json:"difficulty"`
	Notes          string `json:"notes"`
}

type materialRow struct {
	MaterialID   int64  `json:"material_id"`
	ProjectID    int64  `json:"project_id"`
	MaterialName string `json:"material_name"`
	NumRequired  int    `json:"num_required"`
	Cost         string `json:"cost"`
}

type stepRow struct {
	StepID    int64  `json:"step_id"`
	ProjectID int64  `json:"project_id"`
	StepText  string `json:"step_text"`
	StepOrder int    `json:"step_order"`
}

type categoryRow struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type projectCategoryRow struct {
	ProjectID  int64 `json:"project_id"`
	CategoryID int64 `json:"category_id"`
}

// Export writes a snapshot of the whole database to path and returns the
// generated snapshot id.
func (s *Store) Export(path string) (string, error) {
	header := snapshotHeader{
		SnapshotID: newSnapshotID(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Format:     snapshotFormat,
	}

	var records []json.RawMessage
	headerLine, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot header: %w", err)
	}
	records = append(records, headerLine)

	err = s.withTx(func(tx *sql.Tx) error {
		appendRow := func(table string, row any) error {
			raw, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("marshaling %s row: %w", table, err)
			}
			line, err := json.Marshal(snapshotRecord{Table: table, Row: raw})
			if err != nil {
				return fmt.Errorf("marshaling %s record: %w", table, err)
			}
			records = append(records, line)
			return nil
		}

		if err := exportProjects(tx, appendRow); err != nil {
			return err
		}
		if err := exportCategories(tx, appendRow); err != nil {
			return err
		}
		if err := exportMaterials(tx, appendRow); err != nil {
			return err
		}
		if err := exportSteps(tx, appendRow); err != nil {
			return err
		}
		return exportProjectCategories(tx, appendRow)
	})
	if err != nil {
		return "", err
	}

	if err := writeJSONL(path, records); err != nil {
		return "", err
	}
	return header.SnapshotID, nil
}

// Import loads a snapshot file into the store inside one transaction.
// Row ids are preserved; importing into a store that already holds any
// of those ids fails and nothing is applied.
func (s *Store) Import(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("snapshot %s: empty file", path)
	}

	var header snapshotHeader
	if err := json.Unmarshal(records[0], &header); err != nil {
		return fmt.Errorf("parsing snapshot header: %w", err)
	}
	if header.Format != snapshotFormat {
		return fmt.Errorf("snapshot %s: unsupported format %d", path, header.Format)
	}

	return s.withTx(func(tx *sql.Tx) error {
		for _, line := range records[1:] {
			var rec snapshotRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return fmt.Errorf("parsing snapshot record: %w", err)
			}
			if err := importRow(tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// importRow inserts one snapshot record into its table.
func importRow(tx *sql.Tx, rec snapshotRecord) error {
	switch rec.Table {
	case "project":
		var r projectRow
		if err := json.Unmarshal(rec.Row, &r); err != nil {
			return fmt.Errorf("parsing project row: %w", err)
		}
		_, err := tx.Exec(
			"INSERT INTO project (project_id, project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, ?, ?, ?, ?, ?)",
			r.ProjectID, r.ProjectName, r.EstimatedHours, r.ActualHours, r.Difficulty, r.Notes,
		)
		if err != nil {
			return fmt.Errorf("importing project %d: %w", r.ProjectID, err)
		}
	case "category":
		var r categoryRow
		if err := json.Unmarshal(rec.Row, &r); err != nil {
			return fmt.Errorf("parsing category row: %w", err)
		}
		_, err := tx.Exec(
			"INSERT INTO category (category_id, category_name) VALUES (?, ?)",
			r.CategoryID, r.CategoryName,
		)
		if err != nil {
			return fmt.Errorf("importing category %d: %w", r.CategoryID, err)
		}
	case "material":
		var r materialRow
		if err := json.Unmarshal(rec.Row, &r); err != nil {
			return fmt.Errorf("parsing material row: %w", err)
		}
		_, err := tx.Exec(
			"INSERT INTO material (material_id, project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?, ?)",
			r.MaterialID, r.ProjectID, r.MaterialName, r.NumRequired, r.Cost,
		)
		if err != nil {
			return fmt.Errorf("importing material %d: %w", r.MaterialID, err)
		}
	case "step":
		var r stepRow
		if err := json.Unmarshal(rec.Row, &r); err != nil {
			return fmt.Errorf("parsing step row: %w", err)
		}
		_, err := tx.Exec(
			"INSERT INTO step (step_id, project_id, step_text, step_order) VALUES (?, ?, ?, ?)",
			r.StepID, r.ProjectID, r.StepText, r.StepOrder,
		)
		if err != nil {
			return fmt.Errorf("importing step %d: %w", r.StepID, err)
		}
	case "project_category":
		var r projectCategoryRow
		if err := json.Unmarshal(rec.Row, &r); err != nil {
			return fmt.Errorf("parsing project_category row: %w", err)
		}
		_, err := tx.Exec(
			"INSERT INTO project_category (project_id, category_id) VALUES (?, ?)",
			r.ProjectID, r.CategoryID,
		)
		if err != nil {
			return fmt.Errorf("importing project_category (%d, %d): %w", r.ProjectID, r.CategoryID, err)
		}
	default:
		return fmt.Errorf("snapshot record for unknown table %q", rec.Table)
	}
	return nil
}

func exportProjects(tx *sql.Tx, appendRow func(string, any) error) error {
	rows, err := tx.Query(
		"SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes FROM project ORDER BY project_id",
	)
	if err != nil {
		return fmt.Errorf("exporting projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r projectRow
		var est, act types.Decimal
		if err := rows.Scan(&r.ProjectID, &r.ProjectName, &est, &act, &r.Difficulty, &r.Notes); err != nil {
			return fmt.Errorf("scanning project for export: %w", err)
		}
		r.EstimatedHours = est.String()
		r.ActualHours = act.String()
		if err := appendRow("project", r); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportCategories(tx *sql.Tx, appendRow func(string, any) error) error {
	rows, err := tx.Query("SELECT category_id, category_name FROM category ORDER BY category_id")
	if err != nil {
		return fmt.Errorf("exporting categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r categoryRow
		if err := rows.Scan(&r.CategoryID, &r.CategoryName); err != nil {
			return fmt.Errorf("scanning category for export: %w", err)
		}
		if err := appendRow("category", r); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportMaterials(tx *sql.Tx, appendRow func(string, any) error) error {
	rows, err := tx.Query(
		"SELECT material_id, project_id, material_name, num_required, cost FROM material ORDER BY material_id",
	)
	if err != nil {
		return fmt.Errorf("exporting materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r materialRow
		var cost types.Decimal
		if err := rows.Scan(&r.MaterialID, &r.ProjectID, &r.MaterialName, &r.NumRequired, &cost); err != nil {
			return fmt.Errorf("scanning material for export: %w", err)
		}
		r.Cost = cost.String()
		if err := appendRow("material", r); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportSteps(tx *sql.Tx, appendRow func(string, any) error) error {
	rows, err := tx.Query("SELECT step_id, project_id, step_text, step_order FROM step ORDER BY step_id")
	if err != nil {
		return fmt.Errorf("exporting steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r stepRow
		if err := rows.Scan(&r.StepID, &r.ProjectID, &r.StepText, &r.StepOrder); err != nil {
			return fmt.Errorf("scanning step for export: %w", err)
		}
		if err := appendRow("step", r); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportProjectCategories(tx *sql.Tx, appendRow func(string, any) error) error {
	rows, err := tx.Query(
		"SELECT project_id, category_id FROM project_category ORDER BY project_id, category_id",
	)
	if err != nil {
		return fmt.Errorf("exporting project categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r projectCategoryRow
		if err := rows.Scan(&r.ProjectID, &r.CategoryID); err != nil {
			return fmt.Errorf("scanning project_category for export: %w", err)
		}
		if err := appendRow("project_category", r); err != nil {
			return err
		}
	}
	return rows.Err()
}

// newSnapshotID generates a UUID v7 snapshot id, falling back to v4 if
// v7 generation fails.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// readJSONL reads a JSONL file and returns each non-empty line as a
// json.RawMessage.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to path using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
