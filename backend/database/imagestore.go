package database

import (
	"time"

	"github.com/upper/db/v4"

	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

type ImageStore struct {
	database   *Database
	collection db.Collection
}

func NewImageStore(database *Database) *ImageStore {
	return &ImageStore{
		database: database,
	}
}

func (s *ImageStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image")
	}
	return s.collection
}

func (s *ImageStore) AddImage(imageFile *apitype.ImageFile) (*apitype.ImageFile, error) {
	collection := s.getCollection()

	var existing []Image
	if err := collection.Find(db.Cond{
		"directory": imageFile.Directory(),
		"file_name": imageFile.FileName(),
	}).All(&existing); err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		stored := existing[0]
		if stored.ByteSize != imageFile.ByteSize() {
			stored.ByteSize = imageFile.ByteSize()
			stored.ModifiedTime = time.Now()
			if err := collection.Find(db.Cond{"id": stored.Id}).Update(&stored); err != nil {
				return nil, err
			}
		}
		return toImageFile(&stored), nil
	}

	result, err := collection.Insert(Image{
		FileName:     imageFile.FileName(),
		Directory:    imageFile.Directory(),
		ByteSize:     imageFile.ByteSize(),
		ModifiedTime: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.Trace.Printf("Stored image %s to DB", imageFile.String())
	return apitype.NewImageFileWithIdAndSize(
		apitype.ImageId(result.ID().(int64)),
		imageFile.Directory(), imageFile.FileName(), imageFile.ByteSize()), nil
}

func (s *ImageStore) AddImages(imageFiles []*apitype.ImageFile) error {
	for _, imageFile := range imageFiles {
		if _, err := s.AddImage(imageFile); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImageStore) GetAllImages() ([]*apitype.ImageFile, error) {
	var images []Image
	err := s.getCollection().Find().
		OrderBy("directory", "file_name").
		All(&images)

	if err != nil {
		return nil, err
	}

	return toImageFiles(images), nil
}

func (s *ImageStore) GetImageCount() int {
	count, err := s.getCollection().Find().Count()
	if err != nil {
		logger.Error.Print("Could not count images ", err)
		return 0
	}
	return int(count)
}

func (s *ImageStore) RemoveImage(imageId apitype.ImageId) error {
	return s.getCollection().Find(db.Cond{"id": imageId}).Delete()
}

// RemoveMissingImages drops rows whose path is not in the given existing
// set, keeping the cache in sync with the filesystem.
func (s *ImageStore) RemoveMissingImages(existing map[string]bool) (int, error) {
	images, err := s.GetAllImages()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, image := range images {
		if !existing[image.Path()] {
			logger.Trace.Printf("Removing image %s because it doesn't exist", image.String())
			if err := s.RemoveImage(image.Id()); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}
