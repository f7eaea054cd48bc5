package assignment

import (
	"github.com/example/image-tagger/api/apitype"
)

// Store owns the image path to assignment list mapping. Lists keep
// attachment order; an entry whose last assignment is removed is deleted,
// never left empty.
type Store struct {
	assignments apitype.AssignmentView
}

func NewStore() *Store {
	return &Store{
		assignments: apitype.AssignmentView{},
	}
}

// Assign attaches the category and prunes assignments the category declares
// itself mutually exclusive with. Returns false without touching anything
// when the category is already present.
func (s *Store) Assign(path string, category *apitype.Category) bool {
	if s.assignments.Contains(path, category.Id()) {
		return false
	}

	entries := append(s.assignments[path], apitype.NewAssignment(category.Id()))
	if len(category.MutuallyExclusiveWith()) > 0 {
		kept := entries[:0]
		for _, entry := range entries {
			if entry.CategoryId() != category.Id() && category.IsMutuallyExclusiveWith(entry.CategoryId()) {
				continue
			}
			kept = append(kept, entry)
		}
		entries = kept
	}
	s.assignments[path] = entries
	return true
}

func (s *Store) Remove(path string, categoryId apitype.CategoryId) bool {
	entries, ok := s.assignments[path]
	if !ok {
		return false
	}
	kept := make([]*apitype.Assignment, 0, len(entries))
	for _, entry := range entries {
		if entry.CategoryId() != categoryId {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return false
	}
	if len(kept) == 0 {
		delete(s.assignments, path)
	} else {
		s.assignments[path] = kept
	}
	return true
}

// Toggle removes the category when present, otherwise assigns it.
func (s *Store) Toggle(path string, category *apitype.Category) bool {
	if s.assignments.Contains(path, category.Id()) {
		return s.Remove(path, category.Id())
	}
	return s.Assign(path, category)
}

func (s *Store) Contains(path string, categoryId apitype.CategoryId) bool {
	return s.assignments.Contains(path, categoryId)
}

func (s *Store) AssignmentsFor(path string) []*apitype.Assignment {
	return s.assignments[path]
}

// RemoveCategory drops every assignment of the category, deleting image
// entries that become empty. Part of the category delete cascade.
func (s *Store) RemoveCategory(categoryId apitype.CategoryId) bool {
	changed := false
	for path := range s.assignments {
		if s.Remove(path, categoryId) {
			changed = true
		}
	}
	return changed
}

// View exposes the live mapping. Callers must treat it as read-only and use
// Clone before holding on to it.
func (s *Store) View() apitype.AssignmentView {
	return s.assignments
}

// Replace swaps in a loaded mapping. Empty lists are dropped rather than
// stored, keeping the non-empty-list invariant.
func (s *Store) Replace(view apitype.AssignmentView) {
	s.assignments = apitype.AssignmentView{}
	for path, entries := range view {
		if len(entries) > 0 {
			s.assignments[path] = entries
		}
	}
}
