package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/image-tagger/api/apitype"
)

func categoryIds(assignments []*apitype.Assignment) []apitype.CategoryId {
	ids := make([]apitype.CategoryId, len(assignments))
	for i, assignment := range assignments {
		ids[i] = assignment.CategoryId()
	}
	return ids
}

var (
	keep    = apitype.NewCategoryWithId("keep", "Keep", "#3cb44b", []apitype.CategoryId{"archive"})
	archive = apitype.NewCategoryWithId("archive", "Archive", "#e6194b", []apitype.CategoryId{"keep"})
	funny   = apitype.NewCategoryWithId("funny", "Funny", "#ffe119", nil)
)

func TestStoreAssign(t *testing.T) {
	a := assert.New(t)

	t.Run("appends in attachment order", func(t *testing.T) {
		store := NewStore()
		a.True(store.Assign("/a.jpg", funny))
		a.True(store.Assign("/a.jpg", keep))

		a.Equal([]apitype.CategoryId{"funny", "keep"}, categoryIds(store.AssignmentsFor("/a.jpg")))
	})

	t.Run("is a no-op when already present", func(t *testing.T) {
		store := NewStore()
		a.True(store.Assign("/a.jpg", funny))
		a.False(store.Assign("/a.jpg", funny))

		a.Len(store.AssignmentsFor("/a.jpg"), 1)
	})

	t.Run("prunes mutually exclusive assignments", func(t *testing.T) {
		store := NewStore()
		a.True(store.Assign("/a.jpg", archive))
		a.True(store.Assign("/a.jpg", keep))

		a.Equal([]apitype.CategoryId{"keep"}, categoryIds(store.AssignmentsFor("/a.jpg")))
	})

	t.Run("exclusion is only as symmetric as the data", func(t *testing.T) {
		oneWay := apitype.NewCategoryWithId("one-way", "One way", "#4363d8", []apitype.CategoryId{"funny"})

		store := NewStore()
		a.True(store.Assign("/a.jpg", oneWay))
		// funny declares nothing, so one-way survives
		a.True(store.Assign("/a.jpg", funny))

		a.Equal([]apitype.CategoryId{"one-way", "funny"}, categoryIds(store.AssignmentsFor("/a.jpg")))
	})
}

func TestStoreToggle(t *testing.T) {
	a := assert.New(t)

	t.Run("assigns when absent, removes when present", func(t *testing.T) {
		store := NewStore()
		a.True(store.Toggle("/a.jpg", funny))
		a.True(store.Contains("/a.jpg", "funny"))

		a.True(store.Toggle("/a.jpg", funny))
		a.False(store.Contains("/a.jpg", "funny"))
	})

	t.Run("double toggle restores membership", func(t *testing.T) {
		store := NewStore()
		store.Assign("/a.jpg", keep)

		store.Toggle("/a.jpg", funny)
		store.Toggle("/a.jpg", funny)

		a.Equal([]apitype.CategoryId{"keep"}, categoryIds(store.AssignmentsFor("/a.jpg")))
	})

	t.Run("removing last assignment deletes the entry", func(t *testing.T) {
		store := NewStore()
		store.Assign("/a.jpg", funny)
		store.Toggle("/a.jpg", funny)

		_, present := store.View()["/a.jpg"]
		a.False(present)
	})
}

func TestStoreRemoveCategory(t *testing.T) {
	a := assert.New(t)

	store := NewStore()
	store.Assign("/a.jpg", funny)
	store.Assign("/a.jpg", keep)
	store.Assign("/b.jpg", funny)
	store.Assign("/c.jpg", keep)

	a.True(store.RemoveCategory("funny"))

	a.Equal([]apitype.CategoryId{"keep"}, categoryIds(store.AssignmentsFor("/a.jpg")))
	_, present := store.View()["/b.jpg"]
	a.False(present)
	a.Equal([]apitype.CategoryId{"keep"}, categoryIds(store.AssignmentsFor("/c.jpg")))

	a.False(store.RemoveCategory("funny"))
}

func TestStoreReplaceDropsEmptyLists(t *testing.T) {
	a := assert.New(t)

	store := NewStore()
	store.Replace(apitype.AssignmentView{
		"/a.jpg": {apitype.NewAssignment("funny")},
		"/b.jpg": {},
	})

	a.True(store.Contains("/a.jpg", "funny"))
	_, present := store.View()["/b.jpg"]
	a.False(present)
}
