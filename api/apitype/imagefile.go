package apitype

import (
	"path/filepath"
	"strings"
)

type ImageId int64

const NoImage = ImageId(-1)

type ImageFile struct {
	id        ImageId
	directory string
	filename  string
	path      string
	byteSize  int64
}

var EmptyImageFile = ImageFile{id: NoImage, path: ""}

func NewImageFileWithIdAndSize(id ImageId, fileDir string, fileName string, byteSize int64) *ImageFile {
	return &ImageFile{
		id:        id,
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
		byteSize:  byteSize,
	}
}

func NewImageFile(fileDir string, fileName string, byteSize int64) *ImageFile {
	return NewImageFileWithIdAndSize(NoImage, fileDir, fileName, byteSize)
}

func GetEmptyImageFile() *ImageFile {
	return &EmptyImageFile
}

func (s *ImageFile) IsValid() bool {
	return s != nil && len(strings.TrimSpace(s.path)) > 0
}

func (s *ImageFile) Id() ImageId {
	if s != nil {
		return s.id
	} else {
		return NoImage
	}
}

func (s *ImageFile) Persisted() bool {
	if s != nil {
		return s.id > 0
	} else {
		return false
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

func (s *ImageFile) ByteSize() int64 {
	if s != nil {
		return s.byteSize
	} else {
		return 0
	}
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.filename + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}
