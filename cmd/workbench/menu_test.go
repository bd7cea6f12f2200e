// Tests for the interactive menu session's create path.
package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/dukaforge/workbench/internal/service"
	"github.com/dukaforge/workbench/pkg/types"
)

// recordingStore captures inserts so tests can assert what the menu
// actually persisted.
type recordingStore struct {
	inserted []types.Project
}

func (r *recordingStore) InsertProject(p types.Project) (types.Project, error) {
	p.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, p)
	return p, nil
}

func (r *recordingStore) FetchAllProjects() ([]types.Project, error) {
	return append([]types.Project{}, r.inserted...), nil
}

func (r *recordingStore) FetchProjectByID(id int64) (types.Project, bool, error) {
	for _, p := range r.inserted {
		if p.ID == id {
			return p, true, nil
		}
	}
	return types.Project{}, false, nil
}

func (r *recordingStore) UpdateProject(p types.Project) (bool, error) { return false, nil }

func (r *recordingStore) DeleteProject(id int64) (bool, error) { return false, nil }

// newMenuSession wires the global service to a recording store and
// returns a session reading from the scripted input.
func newMenuSession(t *testing.T, store *recordingStore, input string) *menuSession {
	t.Helper()

	prev := projects
	projects = service.New(store)
	t.Cleanup(func() { projects = prev })

	return &menuSession{in: bufio.NewReader(strings.NewReader(input))}
}

func TestCreateProject_BlankNameRejected(t *testing.T) {
	store := &recordingStore{}
	sess := newMenuSession(t, store, "\n")

	err := sess.createProject()
	if err == nil {
		t.Fatal("createProject accepted a blank name")
	}
	if len(store.inserted) != 0 {
		t.Errorf("blank-named project was inserted: %+v", store.inserted)
	}
}

func TestCreateProject_PersistsPromptedValues(t *testing.T) {
	store := &recordingStore{}
	sess := newMenuSession(t, store, "Birdhouse\n2.5\n0\n1\ncedar scraps\n")

	if err := sess.createProject(); err != nil {
		t.Fatalf("createProject failed: %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d projects, want 1", len(store.inserted))
	}
	got := store.inserted[0]
	if got.Name != "Birdhouse" {
		t.Errorf("name = %q, want %q", got.Name, "Birdhouse")
	}
	if got.EstimatedHours.String() != "2.50" {
		t.Errorf("estimated hours = %s, want 2.50", got.EstimatedHours)
	}
	if got.Difficulty != 1 {
		t.Errorf("difficulty = %d, want 1", got.Difficulty)
	}
	if got.Notes != "cedar scraps" {
		t.Errorf("notes = %q, want %q", got.Notes, "cedar scraps")
	}
}
