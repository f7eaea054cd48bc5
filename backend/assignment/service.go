package assignment

import (
	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/backend/category"
	"github.com/example/image-tagger/common/logger"
)

type Service struct {
	sender      api.Sender
	store       *Store
	suppression *Suppression
	registry    *category.Registry
	browser     api.ImageBrowser
	config      api.ConfigService

	api.AssignmentService
}

func NewAssignmentService(
	sender api.Sender,
	store *Store,
	suppression *Suppression,
	registry *category.Registry,
	browser api.ImageBrowser,
	config api.ConfigService) api.AssignmentService {
	return &Service{
		sender:      sender,
		store:       store,
		suppression: suppression,
		registry:    registry,
		browser:     browser,
		config:      config,
	}
}

func (s *Service) Assign(command *api.CategorizeCommand) bool {
	return s.mutate(command, func(category *apitype.Category) bool {
		return s.store.Assign(command.ImagePath, category)
	})
}

func (s *Service) Toggle(command *api.CategorizeCommand) bool {
	return s.mutate(command, func(category *apitype.Category) bool {
		return s.store.Toggle(command.ImagePath, category)
	})
}

// mutate runs one edit through the suppression policy: viewer-driven edits
// of the current image freeze the filter view first and never navigate,
// path-addressed edits navigate away immediately when they knock the
// current image out of the active filter.
func (s *Service) mutate(command *api.CategorizeCommand, apply func(*apitype.Category) bool) bool {
	target := s.registry.CategoryById(command.CategoryId)
	if target == nil {
		s.sender.SendError("Unknown category '"+string(command.CategoryId)+"'", nil)
		return false
	}

	targetsCurrent := command.ImagePath == s.browser.CurrentImage()
	filterActive := s.browser.CategoryFilterActive()

	if command.FromCurrentImage && targetsCurrent && filterActive {
		s.suppression.Activate(s.store.View())
	}

	changed := apply(target)
	if changed {
		s.persist()
		s.sendAssignments(command.ImagePath)
	}

	if changed && !command.FromCurrentImage && !s.suppression.Suppressed() && filterActive && targetsCurrent {
		logger.Debug.Printf("Current image '%s' mutated outside the viewer, retargeting", command.ImagePath)
		s.browser.NavigateToNextFilteredImage()
	}
	return changed
}

func (s *Service) GetAssignments(query *api.ImageCategoryQuery) []*apitype.Assignment {
	return s.store.AssignmentsFor(query.ImagePath)
}

func (s *Service) RequestAssignments(query *api.ImageCategoryQuery) {
	s.sendAssignments(query.ImagePath)
}

// RemoveCategory mutates the store only; the category delete cascade saves
// once after all of its steps.
func (s *Service) RemoveCategory(categoryId apitype.CategoryId) bool {
	return s.store.RemoveCategory(categoryId)
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down assignment service")
}

func (s *Service) persist() {
	if err := s.config.Save(); err != nil {
		s.sender.SendError("Error while saving assignments", err)
	}
}

func (s *Service) sendAssignments(path string) {
	s.sender.SendCommandToTopic(api.CategoryImageUpdate, &api.ImageCategoriesCommand{
		ImagePath:   path,
		Assignments: s.store.AssignmentsFor(path),
	})
}
