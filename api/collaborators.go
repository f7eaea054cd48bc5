package api

import "github.com/example/image-tagger/api/apitype"

// Viewer is the single-image view control surface. The engine decides which
// image it should show; rendering is someone else's problem.
type Viewer interface {
	ShowImage(path string)
	CloseImage()
}

// Confirmer asks the user a yes/no question before destructive operations.
type Confirmer interface {
	ConfirmCategoryDelete(categoryName string) bool
}

// ImageScanner enumerates the images and subdirectories of one directory.
type ImageScanner interface {
	Scan(directory string) (images []*apitype.ImageFile, directories []string, err error)
}
