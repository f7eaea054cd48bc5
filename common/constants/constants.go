package constants

const (
	ImageTaggerDir = ".image-tagger"

	// CategoryFileName is the default name of the persisted categorization
	// document inside the browsed directory.
	CategoryFileName = ".image-tagger.json"

	CacheDatabaseFileName = "cache.db"

	EventBusQueueSize = 1000
)
