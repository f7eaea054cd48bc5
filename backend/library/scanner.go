package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

// Files below this size are skipped as thumbnails/icons rather than photos.
const minImageByteSize = 15 * 1024

var supportedFileEndings = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".webp": true, ".svg": true, ".ico": true,
}

// FileSystemScanner lists the images and subdirectories of one directory,
// non-recursively, sorted by path.
type FileSystemScanner struct {
	api.ImageScanner
}

func NewFileSystemScanner() api.ImageScanner {
	return &FileSystemScanner{}
}

func (s *FileSystemScanner) Scan(directory string) ([]*apitype.ImageFile, []string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", directory)
	var imageFiles []*apitype.ImageFile
	var directories []string
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, filepath.Join(directory, entry.Name()))
			continue
		}
		if !isSupported(filepath.Ext(entry.Name())) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Warn.Printf("Could not stat '%s': %s", entry.Name(), err)
			continue
		}
		if info.Size() < minImageByteSize {
			continue
		}
		imageFiles = append(imageFiles, apitype.NewImageFile(directory, entry.Name(), info.Size()))
	}

	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].Path() < imageFiles[j].Path()
	})
	sort.Strings(directories)

	logger.Debug.Printf("Found %d images and %d directories", len(imageFiles), len(directories))
	return imageFiles, directories, nil
}

func isSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}
