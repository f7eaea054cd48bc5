package category

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

var palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#008080",
}

// Registry owns the category definitions. It is plain in-memory state; the
// persisted document is the source of truth and is applied via Replace.
type Registry struct {
	categories []*apitype.Category
	byId       map[apitype.CategoryId]*apitype.Category
}

func NewRegistry() *Registry {
	return &Registry{
		byId: map[apitype.CategoryId]*apitype.Category{},
	}
}

func (s *Registry) Categories() []*apitype.Category {
	return s.categories
}

func (s *Registry) CategoryById(id apitype.CategoryId) *apitype.Category {
	return s.byId[id]
}

// Create adds a category with a fresh id. An empty color picks a palette
// color at random. Name uniqueness is not enforced here; callers are
// expected to check IsDuplicateName first.
func (s *Registry) Create(name string, color string, mutuallyExclusiveWith []apitype.CategoryId) *apitype.Category {
	if color == "" {
		color = palette[rand.Intn(len(palette))]
	}
	category := apitype.NewCategoryWithId(
		apitype.CategoryId(uuid.New().String()), name, color, mutuallyExclusiveWith)
	s.categories = append(s.categories, category)
	s.byId[category.Id()] = category
	logger.Debug.Printf("Created category '%s' (%s)", category.Name(), category.Id())
	return category
}

// Update merges the given fields into the stored category. Empty name/color
// keep the stored value; a nil exclusion list keeps the stored set.
// Mutual-exclusion symmetry is not revalidated.
func (s *Registry) Update(id apitype.CategoryId, name string, color string, mutuallyExclusiveWith []apitype.CategoryId) *apitype.Category {
	existing := s.byId[id]
	if existing == nil {
		return nil
	}
	if name == "" {
		name = existing.Name()
	}
	if color == "" {
		color = existing.Color()
	}
	if mutuallyExclusiveWith == nil {
		mutuallyExclusiveWith = existing.MutuallyExclusiveWith()
	}

	updated := apitype.NewCategoryWithId(id, name, color, mutuallyExclusiveWith)
	for i, category := range s.categories {
		if category.Id() == id {
			s.categories[i] = updated
		}
	}
	s.byId[id] = updated
	return updated
}

func (s *Registry) Remove(id apitype.CategoryId) bool {
	if _, ok := s.byId[id]; !ok {
		return false
	}
	delete(s.byId, id)
	kept := s.categories[:0]
	for _, category := range s.categories {
		if category.Id() != id {
			kept = append(kept, category)
		}
	}
	s.categories = kept
	return true
}

// Replace swaps in the loaded category list, for example after a directory
// change.
func (s *Registry) Replace(categories []*apitype.Category) {
	s.categories = categories
	s.byId = map[apitype.CategoryId]*apitype.Category{}
	for _, category := range categories {
		s.byId[category.Id()] = category
	}
}

// IsDuplicateName compares the trimmed candidate case-insensitively against
// each stored name as stored, without trimming. A stored name saved with
// surrounding spaces therefore never collides with its trimmed form.
func (s *Registry) IsDuplicateName(name string, excludeId apitype.CategoryId) bool {
	candidate := strings.ToLower(strings.TrimSpace(name))
	for _, category := range s.categories {
		if category.Id() == excludeId {
			continue
		}
		if strings.ToLower(category.Name()) == candidate {
			return true
		}
	}
	return false
}
