package filtering

import (
	"strings"

	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

// SizeMatcher reports whether an image passes the size criterion. The
// engine mandates no size semantics of its own; the file-metadata side
// supplies the comparison.
type SizeMatcher func(image *apitype.ImageFile, criteria *apitype.FilterCriteria) bool

// FilteredImages computes the ordered subset of images matching the
// criteria, reading category membership from the given assignment view.
// The caller picks the view (live or suppression snapshot); relative input
// order is preserved and no sorting happens here.
func FilteredImages(
	images []*apitype.ImageFile,
	criteria *apitype.FilterCriteria,
	assignments apitype.AssignmentView,
	sizeMatches SizeMatcher) []*apitype.ImageFile {

	normalized := normalize(images)
	if criteria == nil {
		return normalized
	}

	filtered := make([]*apitype.ImageFile, 0, len(normalized))
	for _, image := range normalized {
		if !matchesCategory(image.Path(), criteria.CategoryId, assignments) {
			continue
		}
		if criteria.HasNameFilter() && !matchesName(image.FileName(), criteria) {
			continue
		}
		if criteria.HasSizeFilter() && sizeMatches != nil && !sizeMatches(image, criteria) {
			continue
		}
		filtered = append(filtered, image)
	}
	return filtered
}

// normalize keeps only entries with a genuinely non-empty path. Nil entries
// and empty or whitespace-only paths are dropped, not coerced.
func normalize(images []*apitype.ImageFile) []*apitype.ImageFile {
	valid := make([]*apitype.ImageFile, 0, len(images))
	for _, image := range images {
		if image.IsValid() {
			valid = append(valid, image)
		}
	}
	return valid
}

func matchesCategory(path string, categoryId apitype.CategoryId, assignments apitype.AssignmentView) bool {
	switch categoryId {
	case apitype.NoCategory:
		return true
	case apitype.Uncategorized:
		return !assignments.Categorized(path)
	default:
		return assignments.Contains(path, categoryId)
	}
}

func matchesName(fileName string, criteria *apitype.FilterCriteria) bool {
	name := fileName
	pattern := criteria.NamePattern
	if !criteria.MatchCase {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}

	switch criteria.NameOperator {
	case apitype.NameOperatorContains:
		return strings.Contains(name, pattern)
	case apitype.NameOperatorStartsWith:
		return strings.HasPrefix(name, pattern)
	case apitype.NameOperatorEndsWith:
		return strings.HasSuffix(name, pattern)
	case apitype.NameOperatorExact:
		return name == pattern
	default:
		// Permissive on purpose: an unrecognized operator passes every
		// image instead of rejecting the configuration.
		logger.Debug.Printf("Unknown name operator '%s', passing through", criteria.NameOperator)
		return true
	}
}
