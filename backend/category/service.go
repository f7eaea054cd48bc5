package category

import (
	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

type Service struct {
	sender      api.Sender
	registry    *Registry
	assignments api.AssignmentService
	hotkeys     api.HotkeyService
	confirmer   api.Confirmer
	config      api.ConfigService

	api.CategoryService
}

func NewCategoryService(
	sender api.Sender,
	registry *Registry,
	assignments api.AssignmentService,
	hotkeys api.HotkeyService,
	confirmer api.Confirmer,
	config api.ConfigService) api.CategoryService {
	return &Service{
		sender:      sender,
		registry:    registry,
		assignments: assignments,
		hotkeys:     hotkeys,
		confirmer:   confirmer,
		config:      config,
	}
}

func (s *Service) GetCategories() []*apitype.Category {
	return s.registry.Categories()
}

func (s *Service) GetCategoryById(query *api.CategoryQuery) *apitype.Category {
	return s.registry.CategoryById(query.Id)
}

func (s *Service) RequestCategories() {
	s.sender.SendCommandToTopic(
		api.CategoriesUpdated,
		&api.UpdateCategoriesCommand{Categories: s.registry.Categories()},
	)
}

func (s *Service) Create(command *api.CreateCategoryCommand) *apitype.Category {
	category := s.registry.Create(command.Name, command.Color, command.MutuallyExclusiveWith)
	s.persist()
	s.RequestCategories()
	return category
}

func (s *Service) Update(command *api.EditCategoryCommand) *apitype.Category {
	updated := s.registry.Update(command.Id, command.Name, command.Color, command.MutuallyExclusiveWith)
	if updated == nil {
		logger.Warn.Printf("Cannot update unknown category '%s'", command.Id)
		return nil
	}
	s.persist()
	s.RequestCategories()
	return updated
}

// Delete removes the category after confirmation, drops its assignments from
// every image and disarms hotkeys bound to it. Declined confirmation is a
// normal abort.
func (s *Service) Delete(command *api.DeleteCategoryCommand) bool {
	category := s.registry.CategoryById(command.Id)
	if category == nil {
		logger.Warn.Printf("Cannot delete unknown category '%s'", command.Id)
		return false
	}

	if !s.confirmer.ConfirmCategoryDelete(category.Name()) {
		logger.Debug.Printf("Delete of category '%s' cancelled", category.Name())
		return false
	}

	s.registry.Remove(command.Id)
	s.assignments.RemoveCategory(command.Id)
	disarmed := s.hotkeys.DisarmCategory(command.Id)
	if disarmed > 0 {
		logger.Debug.Printf("Disarmed %d hotkeys for category '%s'", disarmed, category.Name())
	}

	s.persist()
	s.RequestCategories()
	return true
}

func (s *Service) IsDuplicateName(query *api.DuplicateNameQuery) bool {
	return s.registry.IsDuplicateName(query.Name, query.ExcludeId)
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down category service")
}

func (s *Service) persist() {
	if err := s.config.Save(); err != nil {
		s.sender.SendError("Error while saving categories", err)
	}
}
