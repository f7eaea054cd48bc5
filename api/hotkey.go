package api

import "github.com/example/image-tagger/api/apitype"

type UpdateHotkeysCommand struct {
	Hotkeys []*apitype.Hotkey
	apitype.NotThrottled
}

type HotkeyService interface {
	GetHotkeys() []*apitype.Hotkey
	Replace([]*apitype.Hotkey)

	// SeedDefaults installs the default next/previous image bindings when
	// no hotkeys exist. Reports whether anything was added.
	SeedDefaults() bool

	// DisarmCategory empties the action of every hotkey referencing the
	// category and returns how many were disarmed. The bindings remain.
	DisarmCategory(apitype.CategoryId) int

	Close()
}
