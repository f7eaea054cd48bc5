package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.Called(topic)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.Called(message, err)
}

type StubAssignments struct {
	api.AssignmentService
	removed []apitype.CategoryId
}

func (s *StubAssignments) RemoveCategory(categoryId apitype.CategoryId) bool {
	s.removed = append(s.removed, categoryId)
	return true
}

type StubHotkeys struct {
	api.HotkeyService
	disarmed []apitype.CategoryId
}

func (s *StubHotkeys) DisarmCategory(categoryId apitype.CategoryId) int {
	s.disarmed = append(s.disarmed, categoryId)
	return 1
}

type StubConfirmer struct {
	answer bool
}

func (s *StubConfirmer) ConfirmCategoryDelete(name string) bool {
	return s.answer
}

type CountingConfig struct {
	api.ConfigService
	saves int
}

func (s *CountingConfig) Save() error {
	s.saves++
	return nil
}

func newTestService(confirm bool) (api.CategoryService, *Registry, *StubAssignments, *StubHotkeys, *CountingConfig, *MockSender) {
	registry := NewRegistry()
	registry.Replace([]*apitype.Category{
		apitype.NewCategoryWithId("keep", "Keep", "#3cb44b", []apitype.CategoryId{"archive"}),
		apitype.NewCategoryWithId("archive", "Archive", "#e6194b", []apitype.CategoryId{"keep"}),
	})

	sender := new(MockSender)
	sender.On("SendCommandToTopic", mock.Anything, mock.Anything).Return()

	assignments := &StubAssignments{}
	hotkeys := &StubHotkeys{}
	config := &CountingConfig{}
	service := NewCategoryService(sender, registry, assignments, hotkeys, &StubConfirmer{answer: confirm}, config)
	return service, registry, assignments, hotkeys, config, sender
}

func TestCreatePersistsAndBroadcasts(t *testing.T) {
	a := assert.New(t)

	service, registry, _, _, config, sender := newTestService(true)

	created := service.Create(&api.CreateCategoryCommand{Name: "Funny", Color: "#ffe119"})

	a.NotNil(created)
	a.Equal(created, registry.CategoryById(created.Id()))
	a.Equal(1, config.saves)
	sender.AssertCalled(t, "SendCommandToTopic", api.CategoriesUpdated, mock.Anything)
}

func TestUpdateUnknownCategory(t *testing.T) {
	a := assert.New(t)

	service, _, _, _, config, _ := newTestService(true)

	a.Nil(service.Update(&api.EditCategoryCommand{Id: "no-such", Name: "Name"}))
	a.Equal(0, config.saves)
}

func TestDeleteCascades(t *testing.T) {
	a := assert.New(t)

	service, registry, assignments, hotkeys, config, _ := newTestService(true)

	a.True(service.Delete(&api.DeleteCategoryCommand{Id: "keep"}))

	a.Nil(registry.CategoryById("keep"))
	a.Equal([]apitype.CategoryId{"keep"}, assignments.removed)
	a.Equal([]apitype.CategoryId{"keep"}, hotkeys.disarmed)
	// The whole cascade saves exactly once.
	a.Equal(1, config.saves)
}

func TestDeleteDeclinedLeavesEverythingUntouched(t *testing.T) {
	a := assert.New(t)

	service, registry, assignments, hotkeys, config, _ := newTestService(false)

	a.False(service.Delete(&api.DeleteCategoryCommand{Id: "keep"}))

	a.NotNil(registry.CategoryById("keep"))
	a.Empty(assignments.removed)
	a.Empty(hotkeys.disarmed)
	a.Equal(0, config.saves)
}

func TestDeleteUnknownCategory(t *testing.T) {
	a := assert.New(t)

	service, _, _, _, config, _ := newTestService(true)

	a.False(service.Delete(&api.DeleteCategoryCommand{Id: "no-such"}))
	a.Equal(0, config.saves)
}
