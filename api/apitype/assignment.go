package apitype

import (
	"time"
)

// Assignment records that an image carries a category, with the attachment
// time as an ISO-ordered string so that lexical order equals temporal order.
type Assignment struct {
	categoryId CategoryId
	assignedAt string
}

func NewAssignment(categoryId CategoryId) *Assignment {
	return NewAssignmentAt(categoryId, time.Now().UTC().Format(time.RFC3339Nano))
}

func NewAssignmentAt(categoryId CategoryId, assignedAt string) *Assignment {
	return &Assignment{
		categoryId: categoryId,
		assignedAt: assignedAt,
	}
}

func (s *Assignment) CategoryId() CategoryId {
	if s != nil {
		return s.categoryId
	} else {
		return NoCategory
	}
}

func (s *Assignment) AssignedAt() string {
	if s != nil {
		return s.assignedAt
	} else {
		return ""
	}
}

// AssignmentView is a read view of the image path to assignment list mapping.
// Entries keep attachment order. A present key always has a non-empty list.
type AssignmentView map[string][]*Assignment

func (s AssignmentView) Contains(path string, categoryId CategoryId) bool {
	for _, assignment := range s[path] {
		if assignment.CategoryId() == categoryId {
			return true
		}
	}
	return false
}

func (s AssignmentView) Categorized(path string) bool {
	return len(s[path]) > 0
}

// Clone copies the mapping and its lists so that later edits to the live
// store cannot be observed through the clone.
func (s AssignmentView) Clone() AssignmentView {
	cloned := make(AssignmentView, len(s))
	for path, assignments := range s {
		copied := make([]*Assignment, len(assignments))
		copy(copied, assignments)
		cloned[path] = copied
	}
	return cloned
}
