package database

import (
	"os"
	"path/filepath"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"

	"github.com/example/image-tagger/common/constants"
	"github.com/example/image-tagger/common/logger"
)

// Database is the per-directory image metadata cache. It is only a cache:
// losing it costs a rescan, not user data.
type Database struct {
	session db.Session
	dbPath  string
}

func NewInMemoryDatabase() *Database {
	logger.Info.Printf("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}

	database := Database{session: session}
	database.Migrate()
	return &database
}

func NewDatabase() *Database {
	return &Database{}
}

func (s *Database) InitializeForDirectory(directory string, file string) error {
	settingDir := filepath.Join(directory, constants.ImageTaggerDir)
	if err := os.MkdirAll(settingDir, 0755); err != nil {
		return err
	}

	s.dbPath = filepath.Join(settingDir, file)
	logger.Info.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}

	s.session = session
	return nil
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Migrate() {
	if s.doesTablesExist() {
		logger.Debug.Print("Tables already exist")
		return
	}

	logger.Info.Print("Creating image cache tables...")
	_, err := s.session.SQL().Exec(`
		CREATE TABLE image (
		    id INTEGER PRIMARY KEY,
		    file_name TEXT,
			directory TEXT,
			byte_size INT,
			modified_time TIMESTAMP,

			UNIQUE (directory, file_name)
		)
	`)
	if err != nil {
		logger.Error.Fatal("Error while creating image table ", err)
	}
}

func (s *Database) doesTablesExist() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name = 'image';
	`)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) Close() error {
	logger.Info.Printf("Closing database")
	if s.session == nil {
		return nil
	}
	return s.session.Close()
}
