package api

// ConfigService loads and saves the per-directory categorization document.
type ConfigService interface {
	// InitializeForDirectory loads the document for the directory. A missing
	// document means "no assignments yet" and clears in-memory state. A load
	// superseded by a later one is discarded without touching state.
	InitializeForDirectory(directory string) error

	// Save writes the current categories, assignments and hotkeys. Failures
	// propagate; in-memory state is not rolled back.
	Save() error

	Close()
}
