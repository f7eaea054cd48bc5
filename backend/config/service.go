package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"

	atomicfile "github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/backend/assignment"
	"github.com/example/image-tagger/backend/category"
	"github.com/example/image-tagger/common/constants"
	"github.com/example/image-tagger/common/logger"
)

// SyncFacade translates the in-memory category, assignment and hotkey state
// to and from the per-directory document on disk. Saves run after every
// mutation; the in-memory state is authoritative and never rolled back on
// I/O failure.
type SyncFacade struct {
	sender   api.Sender
	registry *category.Registry
	store    *assignment.Store
	hotkeys  api.HotkeyService

	configuredPath string
	browseDir      string
	loadRequest    int64

	api.ConfigService
}

func NewSyncFacade(
	sender api.Sender,
	registry *category.Registry,
	store *assignment.Store,
	hotkeys api.HotkeyService,
	configuredPath string) api.ConfigService {
	return &SyncFacade{
		sender:         sender,
		registry:       registry,
		store:          store,
		hotkeys:        hotkeys,
		configuredPath: configuredPath,
	}
}

// InitializeForDirectory loads the document for the directory. Each call
// supersedes earlier ones: a slow load finishing after a newer one started
// is discarded rather than overwriting fresher state. A missing file is the
// empty state, not an error.
func (s *SyncFacade) InitializeForDirectory(directory string) error {
	s.browseDir = directory
	requestId := atomic.AddInt64(&s.loadRequest, 1)

	path := s.documentPath()
	logger.Info.Printf("Loading categorization from '%s'", path)

	doc := &document{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error.Print("Could not read category file ", err)
			s.sender.SendError("Error while loading categories", err)
			return err
		}
		logger.Debug.Print("No category file yet, starting empty")
	} else {
		standardized, err := hujson.Standardize(data)
		if err != nil {
			s.sender.SendError("Error while parsing category file", err)
			return err
		}
		if err := json.Unmarshal(standardized, doc); err != nil {
			s.sender.SendError("Error while parsing category file", err)
			return err
		}
	}

	if atomic.LoadInt64(&s.loadRequest) != requestId {
		logger.Debug.Printf("Discarding stale load of '%s'", path)
		return nil
	}

	categories, assignments, hotkeys := fromDocument(doc)
	s.registry.Replace(categories)
	s.store.Replace(assignments)
	s.hotkeys.Replace(hotkeys)

	if s.hotkeys.SeedDefaults() {
		return s.Save()
	}
	return nil
}

func (s *SyncFacade) Save() error {
	if s.browseDir == "" {
		logger.Warn.Print("Not saving, no directory loaded yet")
		return nil
	}

	doc := toDocument(s.registry.Categories(), s.store.View(), s.hotkeys.GetHotkeys())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := s.documentPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error.Print("Could not create category file directory ", err)
		return err
	}
	if err := atomicfile.WriteFile(path, bytes.NewReader(data)); err != nil {
		logger.Error.Print("Could not write category file ", err)
		return err
	}
	logger.Trace.Printf("Saved categorization to '%s'", path)
	return nil
}

func (s *SyncFacade) Close() {
	logger.Info.Print("Shutting down config sync")
}

func (s *SyncFacade) documentPath() string {
	dir, file := DeriveLocation(s.configuredPath, s.browseDir)
	if file == "" {
		file = constants.CategoryFileName
	}
	return filepath.Join(dir, file)
}
