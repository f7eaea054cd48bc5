package database

import (
	"github.com/example/image-tagger/api/apitype"
)

func toImageFile(image *Image) *apitype.ImageFile {
	return apitype.NewImageFileWithIdAndSize(
		apitype.ImageId(image.Id), image.Directory, image.FileName, image.ByteSize)
}

func toImageFiles(images []Image) []*apitype.ImageFile {
	imageFiles := make([]*apitype.ImageFile, len(images))
	for i, image := range images {
		imageFiles[i] = toImageFile(&image)
	}
	return imageFiles
}
