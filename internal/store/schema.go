package store

// Schema DDL. The project table owns materials and steps by composition
// and shares categories through the project_category association table;
// referential integrity and cascading removal live here, not in the
// application code.
const (
	createProject = `CREATE TABLE IF NOT EXISTS project (
    project_id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_name TEXT NOT NULL,
    estimated_hours TEXT NOT NULL,
    actual_hours TEXT NOT NULL,
    difficulty INTEGER NOT NULL,
    notes TEXT NOT NULL DEFAULT ''
);`

	createMaterial = `CREATE TABLE IF NOT EXISTS material (
    material_id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL,
    material_name TEXT NOT NULL,
    num_required INTEGER NOT NULL DEFAULT 1,
    cost TEXT NOT NULL DEFAULT '0.00',
    FOREIGN KEY (project_id) REFERENCES project (project_id) ON DELETE CASCADE
);`

	createStep = `CREATE TABLE IF NOT EXISTS step (
    step_id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL,
    step_text TEXT NOT NULL,
    step_order INTEGER NOT NULL,
    FOREIGN KEY (project_id) REFERENCES project (project_id) ON DELETE CASCADE
);`

	createCategory = `CREATE TABLE IF NOT EXISTS category (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    category_name TEXT NOT NULL UNIQUE
);`

	createProjectCategory = `CREATE TABLE IF NOT EXISTS project_category (
    project_id INTEGER NOT NULL,
    category_id INTEGER NOT NULL,
    PRIMARY KEY (project_id, category_id),
    FOREIGN KEY (project_id) REFERENCES project (project_id) ON DELETE CASCADE,
    FOREIGN KEY (category_id) REFERENCES category (category_id) ON DELETE CASCADE
);`
)

// schemaDDL lists the statements executed on Open, parents before
// children.
var schemaDDL = []string{
	createProject,
	createMaterial,
	createStep,
	createCategory,
	createProjectCategory,
}
