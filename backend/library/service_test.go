package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/backend/assignment"
	"github.com/example/image-tagger/backend/database"
)

type StubSender struct {
	api.Sender
}

func (s *StubSender) SendToTopic(topic api.Topic) {}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {}

func (s *StubSender) SendError(message string, err error) {}

type StubScanner struct {
	images []*apitype.ImageFile
}

func (s *StubScanner) Scan(directory string) ([]*apitype.ImageFile, []string, error) {
	return s.images, nil, nil
}

type RecordingViewer struct {
	shown  []string
	closed int
}

func (s *RecordingViewer) ShowImage(path string) {
	s.shown = append(s.shown, path)
}

func (s *RecordingViewer) CloseImage() {
	s.closed++
}

func (s *RecordingViewer) lastShown() string {
	if len(s.shown) == 0 {
		return ""
	}
	return s.shown[len(s.shown)-1]
}

var keep = apitype.NewCategoryWithId("keep", "Keep", "#3cb44b", nil)

func newTestService(t *testing.T, fileNames ...string) (*Service, *assignment.Store, *assignment.Suppression, *RecordingViewer) {
	images := make([]*apitype.ImageFile, 0, len(fileNames))
	for _, fileName := range fileNames {
		images = append(images, apitype.NewImageFile("/photos", fileName, 20*1024))
	}

	store := assignment.NewStore()
	suppression := assignment.NewSuppression()
	viewer := &RecordingViewer{}
	service := NewImageService(
		&StubSender{},
		database.NewImageStore(database.NewInMemoryDatabase()),
		&StubScanner{images: images},
		store,
		suppression,
		viewer)

	require.NoError(t, service.InitializeFromDirectory("/photos"))
	return service, store, suppression, viewer
}

func paths(images []*apitype.ImageFile) []string {
	values := make([]string, 0, len(images))
	for _, image := range images {
		values = append(values, image.Path())
	}
	return values
}

func TestInitializeFromDirectoryEnumeratesImages(t *testing.T) {
	a := assert.New(t)

	service, _, _, _ := newTestService(t, "c.jpg", "a.jpg", "b.jpg")

	a.Equal(
		[]string{"/photos/a.jpg", "/photos/b.jpg", "/photos/c.jpg"},
		paths(service.GetFilteredImages()))
}

func TestSetFilterNarrowsTheImageSet(t *testing.T) {
	a := assert.New(t)

	service, store, _, _ := newTestService(t, "a.jpg", "b.jpg", "c.jpg")
	store.Assign("/photos/b.jpg", keep)

	service.SetFilter(&api.SetFilterCommand{
		Criteria: &apitype.FilterCriteria{CategoryId: "keep"},
	})
	a.Equal([]string{"/photos/b.jpg"}, paths(service.GetFilteredImages()))
	a.True(service.CategoryFilterActive())

	service.ShowAllImages()
	a.Len(service.GetFilteredImages(), 3)
	a.False(service.CategoryFilterActive())
}

func TestShowImage(t *testing.T) {
	a := assert.New(t)

	service, _, _, viewer := newTestService(t, "a.jpg", "b.jpg")

	t.Run("Opens the viewer on the requested image", func(t *testing.T) {
		service.ShowImage(&api.ImageQuery{Path: "/photos/b.jpg"})

		a.Equal("/photos/b.jpg", service.CurrentImage())
		a.Equal("/photos/b.jpg", viewer.lastShown())
	})
	t.Run("Ignores paths outside the filtered set", func(t *testing.T) {
		service.ShowImage(&api.ImageQuery{Path: "/photos/missing.jpg"})

		a.Equal("/photos/b.jpg", service.CurrentImage())
	})
}

func TestNextAndPreviousClampAtTheEnds(t *testing.T) {
	a := assert.New(t)

	service, _, _, _ := newTestService(t, "a.jpg", "b.jpg")
	service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})

	service.RequestPreviousImage()
	a.Equal("/photos/a.jpg", service.CurrentImage())

	service.RequestNextImage()
	a.Equal("/photos/b.jpg", service.CurrentImage())

	service.RequestNextImage()
	a.Equal("/photos/b.jpg", service.CurrentImage())
}

func TestNextWithEmptyFilteredSetClosesTheViewer(t *testing.T) {
	a := assert.New(t)

	service, _, _, viewer := newTestService(t, "a.jpg")
	service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})

	service.SetFilter(&api.SetFilterCommand{
		Criteria: &apitype.FilterCriteria{CategoryId: "keep"},
	})
	service.RequestNextImage()

	a.Equal("", service.CurrentImage())
	a.Equal(1, viewer.closed)
}

func TestExplicitNavigationClearsSuppression(t *testing.T) {
	a := assert.New(t)

	service, store, suppression, _ := newTestService(t, "a.jpg", "b.jpg")
	service.SetFilter(&api.SetFilterCommand{
		Criteria: &apitype.FilterCriteria{CategoryId: apitype.Uncategorized},
	})

	// Freeze the view, then categorize a.jpg underneath it: the frozen
	// snapshot keeps a.jpg visible.
	suppression.Activate(store.View())
	store.Assign("/photos/a.jpg", keep)
	a.Equal(
		[]string{"/photos/a.jpg", "/photos/b.jpg"},
		paths(service.GetFilteredImages()))

	// Explicit navigation ends the episode and the live view takes over.
	service.RequestNextImage()
	a.False(suppression.Suppressed())
	a.Equal([]string{"/photos/b.jpg"}, paths(service.GetFilteredImages()))
}

func TestNavigateToNextFilteredImage(t *testing.T) {
	a := assert.New(t)

	t.Run("Current image still present moves forward", func(t *testing.T) {
		service, _, _, _ := newTestService(t, "a.jpg", "b.jpg", "c.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/b.jpg"})

		service.NavigateToNextFilteredImage()

		a.Equal("/photos/c.jpg", service.CurrentImage())
	})
	t.Run("Current image dropped from the set opens the first", func(t *testing.T) {
		service, store, _, _ := newTestService(t, "a.jpg", "b.jpg", "c.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})
		service.SetFilter(&api.SetFilterCommand{
			Criteria: &apitype.FilterCriteria{CategoryId: apitype.Uncategorized},
		})

		store.Assign("/photos/a.jpg", keep)
		service.NavigateToNextFilteredImage()

		a.Equal("/photos/b.jpg", service.CurrentImage())
	})
	t.Run("Last image steps back instead of forward", func(t *testing.T) {
		service, _, _, _ := newTestService(t, "a.jpg", "b.jpg", "c.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/c.jpg"})

		service.NavigateToNextFilteredImage()

		a.Equal("/photos/b.jpg", service.CurrentImage())
	})
	t.Run("Sole image closes the viewer", func(t *testing.T) {
		service, _, _, viewer := newTestService(t, "a.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})

		service.NavigateToNextFilteredImage()

		a.Equal("", service.CurrentImage())
		a.Equal(1, viewer.closed)
	})
	t.Run("Empty set closes the viewer", func(t *testing.T) {
		service, store, _, viewer := newTestService(t, "a.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})
		service.SetFilter(&api.SetFilterCommand{
			Criteria: &apitype.FilterCriteria{CategoryId: apitype.Uncategorized},
		})

		store.Assign("/photos/a.jpg", keep)
		service.NavigateToNextFilteredImage()

		a.Equal("", service.CurrentImage())
		a.Equal(1, viewer.closed)
	})
	t.Run("Leaves the suppression snapshot in place", func(t *testing.T) {
		service, store, suppression, _ := newTestService(t, "a.jpg", "b.jpg")
		service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})
		service.SetFilter(&api.SetFilterCommand{
			Criteria: &apitype.FilterCriteria{CategoryId: apitype.Uncategorized},
		})

		suppression.Activate(store.View())
		service.NavigateToNextFilteredImage()

		a.True(suppression.Suppressed())
	})
}

func TestCurrentImageIsEmptyWhileViewerClosed(t *testing.T) {
	a := assert.New(t)

	service, _, _, _ := newTestService(t, "a.jpg")
	a.Equal("", service.CurrentImage())

	service.ShowImage(&api.ImageQuery{Path: "/photos/a.jpg"})
	a.Equal("/photos/a.jpg", service.CurrentImage())

	service.CloseImage()
	a.Equal("", service.CurrentImage())
}
