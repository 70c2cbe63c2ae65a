package view

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ytget/clubhub/internal/model"
)

// FilterController tracks the selected member page category and an optional
// name query. It starts on CategoryAll with no query.
type FilterController struct {
	clubs   *model.CategorySet
	current model.Category
	query   string
}

// NewFilterController creates a controller over the given categories
func NewFilterController(clubs *model.CategorySet) *FilterController {
	return &FilterController{
		clubs:   clubs,
		current: model.CategoryAll,
	}
}

// Current returns the selected category
func (fc *FilterController) Current() model.Category {
	return fc.current
}

// Query returns the active name query
func (fc *FilterController) Query() string {
	return fc.query
}

// Options returns the filter choices: CategoryAll first, then declared categories
func (fc *FilterController) Options() []model.Category {
	return append([]model.Category{model.CategoryAll}, fc.clubs.Categories()...)
}

// Select switches to category and returns the clubs now visible. Unknown
// categories select nothing.
func (fc *FilterController) Select(category model.Category) []model.Club {
	fc.current = category
	return fc.Visible()
}

// SetQuery narrows the visible clubs by fuzzy name match and returns them
func (fc *FilterController) SetQuery(query string) []model.Club {
	fc.query = strings.TrimSpace(query)
	return fc.Visible()
}

// Visible returns the clubs for the current category and query
func (fc *FilterController) Visible() []model.Club {
	clubs := fc.clubs.Select(fc.current)
	if fc.query == "" {
		return clubs
	}
	return MatchClubs(clubs, fc.query)
}

// MatchClubs keeps the clubs whose name fuzzily contains query, in their
// original order.
func MatchClubs(clubs []model.Club, query string) []model.Club {
	matched := make([]model.Club, 0, len(clubs))
	for _, club := range clubs {
		if fuzzy.MatchNormalizedFold(query, club.Name) {
			matched = append(matched, club)
		}
	}
	return matched
}
