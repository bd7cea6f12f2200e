// Tests for the project aggregate operations.
package store

import (
	"testing"

	"github.com/dukaforge/workbench/pkg/types"
)

func mustInsertProject(t *testing.T, s *Store, p types.Project) types.Project {
	t.Helper()
	inserted, err := s.InsertProject(p)
	if err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}
	return inserted
}

func TestInsertProject_AssignsIdentity(t *testing.T) {
	s := newTestStore(t)

	first := mustInsertProject(t, s, types.Project{Name: "Bookshelf", EstimatedHours: 650, ActualHours: 0, Difficulty: 3, Notes: "oak"})
	if first.ID <= 0 {
		t.Fatalf("id = %d, want positive", first.ID)
	}

	second := mustInsertProject(t, s, types.Project{Name: "Birdhouse", Difficulty: 1})
	if second.ID == first.ID {
		t.Errorf("second insert reused id %d", first.ID)
	}
}

func TestInsertProject_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	est, _ := types.ParseDecimal("3.5")
	inserted := mustInsertProject(t, s, types.Project{
		Name:           "Compost bin",
		EstimatedHours: est,
		ActualHours:    0,
		Difficulty:     2,
		Notes:          "use leftover pallets",
	})

	got, found, err := s.FetchProjectByID(inserted.ID)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if !found {
		t.Fatal("inserted project not found")
	}

	if got.Name != "Compost bin" || got.Difficulty != 2 || got.Notes != "use leftover pallets" {
		t.Errorf("scalars did not round-trip: %+v", got)
	}
	// "3.5" is stored normalized to two decimal places.
	if got.EstimatedHours.String() != "3.50" {
		t.Errorf("estimated hours = %q, want %q", got.EstimatedHours.String(), "3.50")
	}
	if got.ActualHours.String() != "0.00" {
		t.Errorf("actual hours = %q, want %q", got.ActualHours.String(), "0.00")
	}

	// No children were added, so collections are present and empty.
	if got.Materials == nil || len(got.Materials) != 0 {
		t.Errorf("materials = %v, want empty non-nil", got.Materials)
	}
	if got.Steps == nil || len(got.Steps) != 0 {
		t.Errorf("steps = %v, want empty non-nil", got.Steps)
	}
	if got.Categories == nil || len(got.Categories) != 0 {
		t.Errorf("categories = %v, want empty non-nil", got.Categories)
	}
}

func TestFetchProjectByID_Missing(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.FetchProjectByID(999)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if found {
		t.Error("found = true for nonexistent id")
	}
}

func TestFetchProjectByID_FullAggregate(t *testing.T) {
	s := newTestStore(t)

	p := mustInsertProject(t, s, types.Project{Name: "Patio table", EstimatedHours: 1200, Difficulty: 4})

	if _, err := s.AddMaterial(types.Material{ProjectID: p.ID, Name: "2x4 lumber", NumRequired: 8, Cost: 389}); err != nil {
		t.Fatalf("AddMaterial failed: %v", err)
	}
	if _, err := s.AddMaterial(types.Material{ProjectID: p.ID, Name: "Wood screws", NumRequired: 40, Cost: 12}); err != nil {
		t.Fatalf("AddMaterial failed: %v", err)
	}
	if _, err := s.AddStep(types.Step{ProjectID: p.ID, Text: "Cut legs to length"}); err != nil {
		t.Fatalf("AddStep failed: %v", err)
	}
	if _, err := s.AddCategory(types.Category{Name: "Outdoor Spaces"}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if err := s.AssignCategory(p.ID, "Outdoor Spaces"); err != nil {
		t.Fatalf("AssignCategory failed: %v", err)
	}

	got, found, err := s.FetchProjectByID(p.ID)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if !found {
		t.Fatal("project not found")
	}

	if len(got.Materials) != 2 {
		t.Fatalf("materials = %d, want 2", len(got.Materials))
	}
	if got.Materials[0].Name != "2x4 lumber" || got.Materials[0].NumRequired != 8 {
		t.Errorf("first material = %+v", got.Materials[0])
	}
	if got.Materials[1].Cost.String() != "0.12" {
		t.Errorf("second material cost = %q, want %q", got.Materials[1].Cost.String(), "0.12")
	}

	if len(got.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(got.Steps))
	}
	if got.Steps[0].Text != "Cut legs to length" || got.Steps[0].Order != 1 {
		t.Errorf("step = %+v", got.Steps[0])
	}

	if len(got.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(got.Categories))
	}
	if got.Categories[0].Name != "Outdoor Spaces" {
		t.Errorf("category = %+v", got.Categories[0])
	}
}

func TestFetchAllProjects_OrderedByName(t *testing.T) {
	s := newTestStore(t)

	mustInsertProject(t, s, types.Project{Name: "Zeta", Difficulty: 1})
	mustInsertProject(t, s, types.Project{Name: "Alpha", Difficulty: 1})
	mustInsertProject(t, s, types.Project{Name: "Mid", Difficulty: 1})

	all, err := s.FetchAllProjects()
	if err != nil {
		t.Fatalf("FetchAllProjects failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	wantOrder := []string{"Alpha", "Mid", "Zeta"}
	for i, want := range wantOrder {
		if all[i].Name != want {
			t.Errorf("position %d = %q, want %q", i, all[i].Name, want)
		}
	}
}

func TestFetchAllProjects_Empty(t *testing.T) {
	s := newTestStore(t)

	all, err := s.FetchAllProjects()
	if err != nil {
		t.Fatalf("FetchAllProjects failed: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("got %v, want empty non-nil slice", all)
	}
}

func TestUpdateProject(t *testing.T) {
	s := newTestStore(t)

	target := mustInsertProject(t, s, types.Project{Name: "Fence gate", EstimatedHours: 200, Difficulty: 2})
	other := mustInsertProject(t, s, types.Project{Name: "Mailbox post", EstimatedHours: 100, Difficulty: 1})

	target.Name = "Fence gate and latch"
	target.ActualHours = 350
	target.Difficulty = 3
	target.Notes = "latch needed a second trip to the store"

	updated, err := s.UpdateProject(target)
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	if !updated {
		t.Fatal("updated = false for existing id")
	}

	got, _, err := s.FetchProjectByID(target.ID)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if got.Name != "Fence gate and latch" || got.ActualHours != 350 || got.Difficulty != 3 {
		t.Errorf("update not applied: %+v", got)
	}

	// The other row is untouched.
	untouched, _, err := s.FetchProjectByID(other.ID)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if untouched.Name != "Mailbox post" {
		t.Errorf("unrelated row changed: %+v", untouched)
	}
}

func TestUpdateProject_Missing(t *testing.T) {
	s := newTestStore(t)
	mustInsertProject(t, s, types.Project{Name: "Planter box", Difficulty: 1})

	updated, err := s.UpdateProject(types.Project{ID: 999, Name: "Ghost"})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	if updated {
		t.Error("updated = true for nonexistent id")
	}

	// The store is unchanged.
	all, err := s.FetchAllProjects()
	if err != nil {
		t.Fatalf("FetchAllProjects failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Planter box" {
		t.Errorf("store changed by missed update: %+v", all)
	}
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)

	p := mustInsertProject(t, s, types.Project{Name: "Tree swing", Difficulty: 2})
	if _, err := s.AddMaterial(types.Material{ProjectID: p.ID, Name: "Rope", NumRequired: 1, Cost: 2499}); err != nil {
		t.Fatalf("AddMaterial failed: %v", err)
	}

	deleted, err := s.DeleteProject(p.ID)
	if err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if !deleted {
		t.Fatal("deleted = false for existing id")
	}

	_, found, err := s.FetchProjectByID(p.ID)
	if err != nil {
		t.Fatalf("FetchProjectByID failed: %v", err)
	}
	if found {
		t.Error("project still found after delete")
	}

	// The cascade removed the material rows: inserting a new material
	// for the dead id now violates the foreign key.
	if _, err := s.AddMaterial(types.Material{ProjectID: p.ID, Name: "More rope", NumRequired: 1}); err == nil {
		t.Error("AddMaterial for deleted project should fail")
	}
}

func TestDeleteProject_Missing(t *testing.T) {
	s := newTestStore(t)
	mustInsertProject(t, s, types.Project{Name: "Shoe rack", Difficulty: 1})

	deleted, err := s.DeleteProject(999)
	if err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if deleted {
		t.Error("deleted = true for nonexistent id")
	}

	all, err := s.FetchAllProjects()
	if err != nil {
		t.Fatalf("FetchAllProjects failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("store changed by missed delete: %+v", all)
	}
}
