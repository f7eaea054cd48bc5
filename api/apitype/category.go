package apitype

import (
	"strings"
)

type CategoryId string

const NoCategory = CategoryId("")

// Uncategorized is the filter sentinel matching images with no assignments.
// It is never the id of a real category.
const Uncategorized = CategoryId("uncategorized")

type Category struct {
	id                    CategoryId
	name                  string
	color                 string
	mutuallyExclusiveWith []CategoryId
}

func NewCategoryWithId(id CategoryId, name string, color string, mutuallyExclusiveWith []CategoryId) *Category {
	return &Category{
		id:                    id,
		name:                  name,
		color:                 color,
		mutuallyExclusiveWith: mutuallyExclusiveWith,
	}
}

func NewCategory(name string, color string, mutuallyExclusiveWith []CategoryId) *Category {
	return NewCategoryWithId(NoCategory, name, color, mutuallyExclusiveWith)
}

func (s *Category) Id() CategoryId {
	if s != nil {
		return s.id
	} else {
		return NoCategory
	}
}

func (s *Category) Name() string {
	if s != nil {
		return s.name
	} else {
		return ""
	}
}

func (s *Category) Color() string {
	if s != nil {
		return s.color
	} else {
		return ""
	}
}

func (s *Category) MutuallyExclusiveWith() []CategoryId {
	if s != nil {
		return s.mutuallyExclusiveWith
	} else {
		return nil
	}
}

func (s *Category) IsMutuallyExclusiveWith(id CategoryId) bool {
	for _, excluded := range s.MutuallyExclusiveWith() {
		if excluded == id {
			return true
		}
	}
	return false
}

func (s *Category) String() string {
	if s != nil {
		return s.name
	} else {
		return "Category<nil>"
	}
}

// NameMatches compares a candidate display name against this category's
// stored name. The candidate is trimmed and compared case-insensitively;
// the stored name is compared as stored, without trimming.
func (s *Category) NameMatches(candidate string) bool {
	return strings.EqualFold(strings.TrimSpace(candidate), s.Name())
}
