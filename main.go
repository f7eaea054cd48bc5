package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/backend"
	"github.com/example/image-tagger/common"
	"github.com/example/image-tagger/common/constants"
	"github.com/example/image-tagger/common/logger"
)

type consoleViewer struct {
	api.Viewer
}

func (s *consoleViewer) ShowImage(path string) {
	fmt.Printf("Viewing %s\n", path)
}

func (s *consoleViewer) CloseImage() {
	fmt.Println("Viewer closed")
}

type consoleConfirmer struct {
	api.Confirmer
}

func (s *consoleConfirmer) ConfirmCategoryDelete(categoryName string) bool {
	fmt.Printf("Delete category '%s' from all images? [y/N] ", categoryName)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.RootPath() == "" {
		fmt.Println("Usage: image-tagger [flags] <directory>")
		os.Exit(1)
	}

	stores := backend.InitializeStores()
	defer stores.Close()
	brokers := backend.InitializeEventBrokers(constants.EventBusQueueSize)
	services := backend.InitializeServices(params, stores, brokers, &consoleViewer{}, &consoleConfirmer{})
	defer services.Close()

	brokers.Broker.Subscribe(api.ImageRequestNext, services.ImageService.RequestNextImage)
	brokers.Broker.Subscribe(api.ImageRequestPrevious, services.ImageService.RequestPreviousImage)

	if err := backend.InitializeForDirectory(stores, services, params.RootPath()); err != nil {
		logger.Error.Fatal("Cannot initialize directory ", err)
	}

	if name := params.CategoryName(); name != "" {
		var categoryId apitype.CategoryId
		for _, category := range services.CategoryService.GetCategories() {
			if category.NameMatches(name) {
				categoryId = category.Id()
			}
		}
		if categoryId == apitype.NoCategory && name != string(apitype.Uncategorized) {
			logger.Error.Fatalf("No category named '%s'", name)
		}
		if categoryId == apitype.NoCategory {
			categoryId = apitype.Uncategorized
		}
		services.ImageService.SetFilter(&api.SetFilterCommand{
			Criteria: &apitype.FilterCriteria{CategoryId: categoryId},
		})
	}

	for _, image := range services.ImageService.GetFilteredImages() {
		fmt.Println(image.Path())
	}
}
