package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

// document is the persisted shape: one logical document per browsed
// directory.
type document struct {
	Categories      []categoryDoc       `json:"categories"`
	ImageCategories []imageCategoryPair `json:"image_categories"`
	Hotkeys         []hotkeyDoc         `json:"hotkeys"`
}

type categoryDoc struct {
	Id                    string   `json:"id"`
	Name                  string   `json:"name"`
	Color                 string   `json:"color"`
	MutuallyExclusiveWith []string `json:"mutuallyExclusiveWith,omitempty"`
}

type assignmentDoc struct {
	CategoryId string `json:"category_id"`
	AssignedAt string `json:"assigned_at"`
}

// imageCategoryPair serializes as a two-element array:
// ["/path/image.jpg", [{"category_id": ..., "assigned_at": ...}, ...]]
type imageCategoryPair struct {
	Path    string
	Entries []assignmentDoc
}

func (s imageCategoryPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{s.Path, s.Entries})
}

func (s *imageCategoryPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("image category entry must be a [path, assignments] pair, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &s.Path); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &s.Entries)
}

type hotkeyDoc struct {
	Id        string   `json:"id"`
	Key       string   `json:"key"`
	Modifiers []string `json:"modifiers"`
	Action    string   `json:"action"`
}

func toDocument(categories []*apitype.Category, assignments apitype.AssignmentView, hotkeys []*apitype.Hotkey) *document {
	doc := &document{
		Categories:      []categoryDoc{},
		ImageCategories: []imageCategoryPair{},
		Hotkeys:         []hotkeyDoc{},
	}

	for _, category := range categories {
		entry := categoryDoc{
			Id:    string(category.Id()),
			Name:  category.Name(),
			Color: category.Color(),
		}
		for _, excluded := range category.MutuallyExclusiveWith() {
			entry.MutuallyExclusiveWith = append(entry.MutuallyExclusiveWith, string(excluded))
		}
		doc.Categories = append(doc.Categories, entry)
	}

	paths := make([]string, 0, len(assignments))
	for path := range assignments {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		pair := imageCategoryPair{Path: path, Entries: []assignmentDoc{}}
		for _, entry := range assignments[path] {
			pair.Entries = append(pair.Entries, assignmentDoc{
				CategoryId: string(entry.CategoryId()),
				AssignedAt: entry.AssignedAt(),
			})
		}
		doc.ImageCategories = append(doc.ImageCategories, pair)
	}

	for _, hotkey := range hotkeys {
		doc.Hotkeys = append(doc.Hotkeys, hotkeyDoc{
			Id:        hotkey.Id(),
			Key:       hotkey.Key(),
			Modifiers: hotkey.Modifiers(),
			Action:    hotkey.ActionString(),
		})
	}

	return doc
}

// fromDocument converts the untrusted persisted form into strict internal
// types. Malformed entries are skipped with a log line, not errors: a
// half-broken document still loads the rest.
func fromDocument(doc *document) ([]*apitype.Category, apitype.AssignmentView, []*apitype.Hotkey) {
	var categories []*apitype.Category
	for _, entry := range doc.Categories {
		if entry.Id == "" {
			logger.Warn.Print("Skipping category without id")
			continue
		}
		var excluded []apitype.CategoryId
		for _, id := range entry.MutuallyExclusiveWith {
			if id != "" {
				excluded = append(excluded, apitype.CategoryId(id))
			}
		}
		categories = append(categories, apitype.NewCategoryWithId(
			apitype.CategoryId(entry.Id), entry.Name, entry.Color, excluded))
	}

	assignments := apitype.AssignmentView{}
	for _, pair := range doc.ImageCategories {
		if strings.TrimSpace(pair.Path) == "" {
			logger.Warn.Print("Skipping image categories entry without path")
			continue
		}
		var entries []*apitype.Assignment
		for _, entry := range pair.Entries {
			if entry.CategoryId == "" {
				logger.Warn.Printf("Skipping assignment without category id for '%s'", pair.Path)
				continue
			}
			entries = append(entries, apitype.NewAssignmentAt(
				apitype.CategoryId(entry.CategoryId), entry.AssignedAt))
		}
		if len(entries) > 0 {
			assignments[pair.Path] = entries
		}
	}

	var hotkeys []*apitype.Hotkey
	for _, entry := range doc.Hotkeys {
		if entry.Id == "" || entry.Key == "" {
			logger.Warn.Print("Skipping hotkey without id or key")
			continue
		}
		hotkeys = append(hotkeys, apitype.NewHotkey(entry.Id, entry.Key, entry.Modifiers, entry.Action))
	}

	return categories, assignments, hotkeys
}
