package apitype

type Hotkey struct {
	id        string
	key       string
	modifiers []string
	action    HotkeyAction
}

func NewHotkey(id string, key string, modifiers []string, action string) *Hotkey {
	return &Hotkey{
		id:        id,
		key:       key,
		modifiers: modifiers,
		action:    ParseHotkeyAction(action),
	}
}

func (s *Hotkey) Id() string {
	if s != nil {
		return s.id
	} else {
		return ""
	}
}

func (s *Hotkey) Key() string {
	if s != nil {
		return s.key
	} else {
		return ""
	}
}

func (s *Hotkey) Modifiers() []string {
	if s != nil {
		return s.modifiers
	} else {
		return nil
	}
}

func (s *Hotkey) Action() HotkeyAction {
	if s != nil {
		return s.action
	} else {
		return HotkeyAction{}
	}
}

// ActionString returns the persisted encoding of the action.
func (s *Hotkey) ActionString() string {
	return s.Action().String()
}

// Disarm clears the action while keeping the binding itself.
func (s *Hotkey) Disarm() {
	s.action = HotkeyAction{}
}

func (s *Hotkey) ReferencesCategory(id CategoryId) bool {
	return s.Action().ReferencesCategory(id)
}
