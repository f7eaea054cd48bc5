package api

import "github.com/example/image-tagger/api/apitype"

// CategorizeCommand attaches or toggles a category on an image.
// FromCurrentImage marks a mutation made through the viewer's own controls
// on the image it is showing; those defer refiltering instead of navigating.
type CategorizeCommand struct {
	ImagePath        string
	CategoryId       apitype.CategoryId
	FromCurrentImage bool

	apitype.NotThrottled
}

type ImageCategoryQuery struct {
	ImagePath string
	apitype.NotThrottled
}

type ImageCategoriesCommand struct {
	ImagePath   string
	Assignments []*apitype.Assignment
	apitype.NotThrottled
}

type AssignmentService interface {
	Assign(*CategorizeCommand) bool
	Toggle(*CategorizeCommand) bool

	GetAssignments(*ImageCategoryQuery) []*apitype.Assignment
	RequestAssignments(*ImageCategoryQuery)

	// RemoveCategory drops every assignment of the category; used by the
	// category delete cascade. Reports whether anything was removed.
	RemoveCategory(apitype.CategoryId) bool

	Close()
}
