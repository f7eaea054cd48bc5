package api

import "github.com/example/image-tagger/api/apitype"

type CategoryQuery struct {
	Id apitype.CategoryId
	apitype.NotThrottled
}

type CreateCategoryCommand struct {
	Name string
	// Color is optional; when empty a palette color is picked at random.
	Color                 string
	MutuallyExclusiveWith []apitype.CategoryId
	apitype.NotThrottled
}

// EditCategoryCommand merges the set fields into the stored category.
// Empty Name/Color leave the stored value unchanged; MutuallyExclusiveWith
// replaces the stored set only when non-nil.
type EditCategoryCommand struct {
	Id                    apitype.CategoryId
	Name                  string
	Color                 string
	MutuallyExclusiveWith []apitype.CategoryId
	apitype.NotThrottled
}

type DeleteCategoryCommand struct {
	Id apitype.CategoryId
	apitype.NotThrottled
}

type DuplicateNameQuery struct {
	Name      string
	ExcludeId apitype.CategoryId
	apitype.NotThrottled
}

type UpdateCategoriesCommand struct {
	Categories []*apitype.Category
	apitype.NotThrottled
}

type CategoryService interface {
	GetCategories() []*apitype.Category
	GetCategoryById(*CategoryQuery) *apitype.Category
	RequestCategories()

	Create(*CreateCategoryCommand) *apitype.Category
	Update(*EditCategoryCommand) *apitype.Category
	Delete(*DeleteCategoryCommand) bool
	IsDuplicateName(*DuplicateNameQuery) bool

	Close()
}
