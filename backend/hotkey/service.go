package hotkey

import (
	"github.com/google/uuid"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

type Service struct {
	sender  api.Sender
	hotkeys []*apitype.Hotkey

	api.HotkeyService
}

func NewHotkeyService(sender api.Sender) api.HotkeyService {
	return &Service{
		sender: sender,
	}
}

func (s *Service) GetHotkeys() []*apitype.Hotkey {
	return s.hotkeys
}

func (s *Service) Replace(hotkeys []*apitype.Hotkey) {
	s.hotkeys = hotkeys
	s.sendHotkeys()
}

// SeedDefaults installs arrow-key next/previous bindings when nothing is
// configured yet, e.g. on the first load of a directory.
func (s *Service) SeedDefaults() bool {
	if len(s.hotkeys) > 0 {
		return false
	}
	logger.Info.Print("Seeding default hotkeys")
	s.hotkeys = []*apitype.Hotkey{
		apitype.NewHotkey(uuid.New().String(), "ArrowRight", nil, "next_image"),
		apitype.NewHotkey(uuid.New().String(), "ArrowLeft", nil, "previous_image"),
	}
	s.sendHotkeys()
	return true
}

func (s *Service) DisarmCategory(categoryId apitype.CategoryId) int {
	disarmed := 0
	for _, hotkey := range s.hotkeys {
		if hotkey.ReferencesCategory(categoryId) {
			hotkey.Disarm()
			disarmed++
		}
	}
	if disarmed > 0 {
		s.sendHotkeys()
	}
	return disarmed
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down hotkey service")
}

func (s *Service) sendHotkeys() {
	s.sender.SendCommandToTopic(api.HotkeysUpdated, &api.UpdateHotkeysCommand{
		Hotkeys: s.hotkeys,
	})
}
