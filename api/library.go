package api

import "github.com/example/image-tagger/api/apitype"

type ImageQuery struct {
	Path string
	apitype.Command
}

type SetFilterCommand struct {
	Criteria *apitype.FilterCriteria
	apitype.Command
}

type SetImagesCommand struct {
	Images []*apitype.ImageFile
	apitype.Command
}

type UpdateImageCommand struct {
	Image *apitype.ImageFile
	Index int
	Total int
	apitype.Command
}

type ImageService interface {
	InitializeFromDirectory(directory string) error

	GetFilteredImages() []*apitype.ImageFile
	RequestImages()

	SetFilter(*SetFilterCommand)
	ShowAllImages()

	ShowImage(*ImageQuery)
	RequestNextImage()
	RequestPreviousImage()
	CloseImage()

	ImageBrowser

	Close()
}

// ImageBrowser is the face of the image service the assignment side needs:
// where the viewer is and how to retarget it after a mutation.
type ImageBrowser interface {
	CurrentImage() string
	CategoryFilterActive() bool
	NavigateToNextFilteredImage()
}
