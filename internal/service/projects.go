// Package service wraps the project store with existence policy: the
// store reports "no match" through its return values, and this layer
// turns those into ErrProjectNotFound failures naming the id. It also
// owns presentation ordering for listings.
package service

import (
	"fmt"
	"sort"

	"github.com/dukaforge/workbench/pkg/types"
)

// ProjectStore is the slice of the store this service needs.
type ProjectStore interface {
	InsertProject(p types.Project) (types.Project, error)
	FetchAllProjects() ([]types.Project, error)
	FetchProjectByID(id int64) (types.Project, bool, error)
	UpdateProject(p types.Project) (bool, error)
	DeleteProject(id int64) (bool, error)
}

// Service orchestrates project operations for the CLI.
type Service struct {
	store ProjectStore
}

// New returns a Service over the given store.
func New(store ProjectStore) *Service {
	return &Service{store: store}
}

// Add persists a new project and returns it with the assigned id.
func (s *Service) Add(p types.Project) (types.Project, error) {
	return s.store.InsertProject(p)
}

// List returns summary records for every project, sorted ascending by
// id. The store sorts by name; re-sorting here keeps the listing order
// deterministic even when names collide.
func (s *Service) List() ([]types.ProjectSummary, error) {
	projects, err := s.store.FetchAllProjects()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].ID < projects[j].ID
	})

	summaries := make([]types.ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = types.ProjectSummary{ID: p.ID, Name: p.Name}
	}
	return summaries, nil
}

// GetByID returns the full aggregate for id, or a wrapped
// ErrProjectNotFound naming the id.
func (s *Service) GetByID(id int64) (types.Project, error) {
	p, found, err := s.store.FetchProjectByID(id)
	if err != nil {
		return types.Project{}, err
	}
	if !found {
		return types.Project{}, fmt.Errorf("project with ID=%d: %w", id, types.ErrProjectNotFound)
	}
	return p, nil
}

// Update replaces all scalar fields of the project matching p.ID. A miss
// is a wrapped ErrProjectNotFound; the caller re-fetches if it needs the
// refreshed aggregate.
func (s *Service) Update(p types.Project) error {
	updated, err := s.store.UpdateProject(p)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("project with ID=%d: %w", p.ID, types.ErrProjectNotFound)
	}
	return nil
}

// Delete removes the project matching id, with the same miss policy as
// Update.
func (s *Service) Delete(id int64) error {
	deleted, err := s.store.DeleteProject(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("project with ID=%d: %w", id, types.ErrProjectNotFound)
	}
	return nil
}
