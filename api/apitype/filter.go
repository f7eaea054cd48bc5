package apitype

type NameOperator string

const (
	NameOperatorNone       = NameOperator("")
	NameOperatorContains   = NameOperator("contains")
	NameOperatorStartsWith = NameOperator("startsWith")
	NameOperatorEndsWith   = NameOperator("endsWith")
	NameOperatorExact      = NameOperator("exact")
)

type SizeOperator string

const (
	SizeOperatorNone        = SizeOperator("")
	SizeOperatorGreaterThan = SizeOperator("gt")
	SizeOperatorLessThan    = SizeOperator("lt")
	SizeOperatorBetween     = SizeOperator("between")
)

// FilterCriteria is the active rule set used to compute the visible image
// subset. CategoryId semantics: NoCategory passes everything, Uncategorized
// matches images with zero assignments, any other value matches images whose
// assignment list contains it.
type FilterCriteria struct {
	CategoryId CategoryId

	NamePattern  string
	NameOperator NameOperator
	MatchCase    bool

	SizeOperator SizeOperator
	SizeValue    int64
	SizeValue2   int64
}

func (s *FilterCriteria) HasCategoryFilter() bool {
	return s != nil && s.CategoryId != NoCategory
}

func (s *FilterCriteria) HasNameFilter() bool {
	return s != nil && s.NameOperator != NameOperatorNone && s.NamePattern != ""
}

func (s *FilterCriteria) HasSizeFilter() bool {
	return s != nil && s.SizeOperator != SizeOperatorNone
}
