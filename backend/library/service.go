package library

import (
	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/backend/assignment"
	"github.com/example/image-tagger/backend/database"
	"github.com/example/image-tagger/backend/filtering"
	"github.com/example/image-tagger/common/logger"
)

// Service owns the browsing session: the enumerated images, the active
// filter criteria and the image the viewer is showing. It is the
// navigation resolver of the system.
type Service struct {
	sender      api.Sender
	imageStore  *database.ImageStore
	scanner     api.ImageScanner
	assignments *assignment.Store
	suppression *assignment.Suppression
	viewer      api.Viewer

	rootDir     string
	criteria    *apitype.FilterCriteria
	currentPath string
	viewerOpen  bool

	api.ImageService
}

func NewImageService(
	sender api.Sender,
	imageStore *database.ImageStore,
	scanner api.ImageScanner,
	assignments *assignment.Store,
	suppression *assignment.Suppression,
	viewer api.Viewer) *Service {
	return &Service{
		sender:      sender,
		imageStore:  imageStore,
		scanner:     scanner,
		assignments: assignments,
		suppression: suppression,
		viewer:      viewer,
	}
}

func (s *Service) InitializeFromDirectory(directory string) error {
	s.rootDir = directory
	s.currentPath = ""
	s.viewerOpen = false
	s.suppression.Clear()

	imageFiles, _, err := s.scanner.Scan(directory)
	if err != nil {
		logger.Error.Print("Cannot scan directory ", err)
		return err
	}
	if err := s.imageStore.AddImages(imageFiles); err != nil {
		logger.Error.Print("Cannot add images ", err)
		return err
	}

	existing := make(map[string]bool, len(imageFiles))
	for _, imageFile := range imageFiles {
		existing[imageFile.Path()] = true
	}
	if removed, err := s.imageStore.RemoveMissingImages(existing); err != nil {
		return err
	} else if removed > 0 {
		logger.Debug.Printf("Removed %d images that don't exist anymore", removed)
	}

	s.sender.SendToTopic(api.DirectoryChanged)
	return nil
}

// GetFilteredImages runs the filter over the enumerated images using
// whichever assignment view is currently authoritative.
func (s *Service) GetFilteredImages() []*apitype.ImageFile {
	images, err := s.imageStore.GetAllImages()
	if err != nil {
		s.sender.SendError("Error while loading images", err)
		return nil
	}
	view := s.suppression.View(s.assignments.View())
	return filtering.FilteredImages(images, s.criteria, view, matchesSize)
}

func (s *Service) RequestImages() {
	s.sender.SendCommandToTopic(api.ImagesUpdated, &api.SetImagesCommand{
		Images: s.GetFilteredImages(),
	})
}

func (s *Service) SetFilter(command *api.SetFilterCommand) {
	s.criteria = command.Criteria
	s.sender.SendCommandToTopic(api.ImageShowOnly, command)
	s.RequestImages()
}

func (s *Service) ShowAllImages() {
	s.criteria = nil
	s.RequestImages()
}

// ShowImage is an explicit user navigation (e.g. a grid click), so it ends
// any suppression episode before retargeting the viewer.
func (s *Service) ShowImage(query *api.ImageQuery) {
	s.suppression.Clear()

	images := s.GetFilteredImages()
	index := indexOf(images, query.Path)
	if index < 0 {
		logger.Warn.Printf("Cannot show image '%s': not in the filtered set", query.Path)
		return
	}
	s.openImage(images, index)
}

func (s *Service) RequestNextImage() {
	s.moveWithOffset(1)
}

func (s *Service) RequestPreviousImage() {
	s.moveWithOffset(-1)
}

// moveWithOffset implements explicit next/previous navigation: clear the
// suppression snapshot first, then move within the freshly filtered list,
// clamped at both ends.
func (s *Service) moveWithOffset(offset int) {
	s.suppression.Clear()

	images := s.GetFilteredImages()
	if len(images) == 0 {
		s.CloseImage()
		return
	}

	index := indexOf(images, s.currentPath)
	if index < 0 {
		index = 0
	} else {
		index += offset
		if index >= len(images) {
			index = len(images) - 1
		}
		if index < 0 {
			index = 0
		}
	}
	s.openImage(images, index)
}

func (s *Service) CloseImage() {
	s.suppression.Clear()
	s.currentPath = ""
	s.viewerOpen = false
	s.viewer.CloseImage()
	s.sender.SendToTopic(api.ImageViewerClosed)
}

func (s *Service) CurrentImage() string {
	if s.viewerOpen {
		return s.currentPath
	}
	return ""
}

func (s *Service) CategoryFilterActive() bool {
	return s.criteria.HasCategoryFilter()
}

// NavigateToNextFilteredImage retargets the viewer after the filtered set
// changed underneath it. The result is always a member of the fresh list,
// or a clean close when the list is empty. Suppression is not cleared here;
// this is mutation-driven, not user navigation.
func (s *Service) NavigateToNextFilteredImage() {
	images := s.GetFilteredImages()
	index := indexOf(images, s.currentPath)

	switch {
	case index < 0:
		if len(images) > 0 {
			s.openImage(images, 0)
		} else {
			s.closeWithoutClearing()
		}
	case index == len(images)-1:
		if len(images) > 1 {
			s.openImage(images, index-1)
		} else {
			s.closeWithoutClearing()
		}
	default:
		s.openImage(images, index+1)
	}
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down image service")
}

func (s *Service) openImage(images []*apitype.ImageFile, index int) {
	image := images[index]
	s.currentPath = image.Path()
	s.viewerOpen = true
	s.viewer.ShowImage(image.Path())
	s.sender.SendCommandToTopic(api.ImageCurrentUpdated, &api.UpdateImageCommand{
		Image: image,
		Index: index,
		Total: len(images),
	})
}

func (s *Service) closeWithoutClearing() {
	s.currentPath = ""
	s.viewerOpen = false
	s.viewer.CloseImage()
	s.sender.SendToTopic(api.ImageViewerClosed)
}

func indexOf(images []*apitype.ImageFile, path string) int {
	if path == "" {
		return -1
	}
	for i, image := range images {
		if image.Path() == path {
			return i
		}
	}
	return -1
}

// matchesSize is the engine's size-stage delegate, comparing the cached
// byte size against the criteria.
func matchesSize(image *apitype.ImageFile, criteria *apitype.FilterCriteria) bool {
	size := image.ByteSize()
	switch criteria.SizeOperator {
	case apitype.SizeOperatorGreaterThan:
		return size > criteria.SizeValue
	case apitype.SizeOperatorLessThan:
		return size < criteria.SizeValue
	case apitype.SizeOperatorBetween:
		return size >= criteria.SizeValue && size <= criteria.SizeValue2
	default:
		return true
	}
}
