package apitype

import (
	"strings"
)

type HotkeyActionKind int

const (
	ActionNone HotkeyActionKind = iota
	ActionNextImage
	ActionPreviousImage
	ActionToggleCategory
	ActionToggleCategoryNext
	ActionAssignCategory
	ActionUnknown
)

const (
	actionNextImage     = "next_image"
	actionPreviousImage = "previous_image"

	// The category reference may carry a trailing "_<suffix>" token after
	// the id in the persisted form.
	toggleCategoryNextPrefix = "toggle_category_next_"
	toggleCategoryPrefix     = "toggle_category_"
	assignCategoryPrefix     = "assign_category_"
)

// HotkeyAction is the decoded form of a persisted action string. Decoding
// happens once here; the rest of the code dispatches on Kind instead of
// matching string prefixes. The raw string is kept so that saving writes
// back exactly what was loaded.
type HotkeyAction struct {
	kind        HotkeyActionKind
	categoryRef string
	raw         string
}

func ParseHotkeyAction(action string) HotkeyAction {
	switch {
	case action == "":
		return HotkeyAction{kind: ActionNone}
	case action == actionNextImage:
		return HotkeyAction{kind: ActionNextImage, raw: action}
	case action == actionPreviousImage:
		return HotkeyAction{kind: ActionPreviousImage, raw: action}
	case strings.HasPrefix(action, toggleCategoryNextPrefix):
		return HotkeyAction{kind: ActionToggleCategoryNext, categoryRef: action[len(toggleCategoryNextPrefix):], raw: action}
	case strings.HasPrefix(action, toggleCategoryPrefix):
		return HotkeyAction{kind: ActionToggleCategory, categoryRef: action[len(toggleCategoryPrefix):], raw: action}
	case strings.HasPrefix(action, assignCategoryPrefix):
		return HotkeyAction{kind: ActionAssignCategory, categoryRef: action[len(assignCategoryPrefix):], raw: action}
	default:
		return HotkeyAction{kind: ActionUnknown, raw: action}
	}
}

func (s HotkeyAction) Kind() HotkeyActionKind {
	return s.kind
}

// CategoryRef is the raw category reference: the id possibly followed by an
// arbitrary "_<suffix>" token.
func (s HotkeyAction) CategoryRef() string {
	return s.categoryRef
}

func (s HotkeyAction) ReferencesCategory(id CategoryId) bool {
	if s.categoryRef == "" || id == NoCategory {
		return false
	}
	if s.categoryRef == string(id) {
		return true
	}
	return strings.HasPrefix(s.categoryRef, string(id)+"_")
}

func (s HotkeyAction) String() string {
	return s.raw
}
