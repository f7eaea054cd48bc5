package backend

import (
	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/backend/assignment"
	"github.com/example/image-tagger/backend/category"
	"github.com/example/image-tagger/backend/config"
	"github.com/example/image-tagger/backend/database"
	"github.com/example/image-tagger/backend/hotkey"
	"github.com/example/image-tagger/backend/library"
	"github.com/example/image-tagger/common"
	"github.com/example/image-tagger/common/constants"
	"github.com/example/image-tagger/common/event"
	"github.com/example/image-tagger/common/logger"
)

type Stores struct {
	CacheDb          *database.Database
	ImageStore       *database.ImageStore
	CategoryRegistry *category.Registry
	AssignmentStore  *assignment.Store
	Suppression      *assignment.Suppression
}

func (s *Stores) Close() {
	defer s.CacheDb.Close()
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.Broker
}

type Services struct {
	CategoryService   api.CategoryService
	AssignmentService api.AssignmentService
	ImageService      api.ImageService
	HotkeyService     api.HotkeyService
	ConfigService     api.ConfigService
}

func (s *Services) Close() {
	defer s.CategoryService.Close()
	defer s.AssignmentService.Close()
	defer s.ImageService.Close()
	defer s.HotkeyService.Close()
	defer s.ConfigService.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeStores() *Stores {
	logger.Debug.Printf("Initialize stores...")
	stores := &Stores{
		CacheDb:          database.NewDatabase(),
		CategoryRegistry: category.NewRegistry(),
		AssignmentStore:  assignment.NewStore(),
		Suppression:      assignment.NewSuppression(),
	}
	stores.ImageStore = database.NewImageStore(stores.CacheDb)
	logger.Debug.Printf("Stores initialized")
	return stores
}

func InitializeServices(
	params *common.Params,
	stores *Stores,
	brokers *Brokers,
	viewer api.Viewer,
	confirmer api.Confirmer) *Services {
	logger.Debug.Printf("Initialize services...")

	hotkeyService := hotkey.NewHotkeyService(brokers.Broker)
	configService := config.NewSyncFacade(
		brokers.Broker, stores.CategoryRegistry, stores.AssignmentStore, hotkeyService, params.CategoryFile())
	imageService := library.NewImageService(
		brokers.Broker, stores.ImageStore, library.NewFileSystemScanner(),
		stores.AssignmentStore, stores.Suppression, viewer)
	assignmentService := assignment.NewAssignmentService(
		brokers.Broker, stores.AssignmentStore, stores.Suppression,
		stores.CategoryRegistry, imageService, configService)
	categoryService := category.NewCategoryService(
		brokers.Broker, stores.CategoryRegistry, assignmentService,
		hotkeyService, confirmer, configService)

	services := &Services{
		CategoryService:   categoryService,
		AssignmentService: assignmentService,
		ImageService:      imageService,
		HotkeyService:     hotkeyService,
		ConfigService:     configService,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// InitializeForDirectory points the whole engine at a directory: cache
// database, image enumeration, then the persisted categorization.
func InitializeForDirectory(stores *Stores, services *Services, directory string) error {
	if err := stores.CacheDb.InitializeForDirectory(directory, constants.CacheDatabaseFileName); err != nil {
		return err
	}
	stores.CacheDb.Migrate()

	if err := services.ImageService.InitializeFromDirectory(directory); err != nil {
		return err
	}
	return services.ConfigService.InitializeForDirectory(directory)
}
