package model

// CategorySet maps category names to ordered club lists. Categories keep the
// order in which they were first added; clubs keep insertion order.
type CategorySet struct {
	order []Category
	clubs map[Category][]Club
}

// NewCategorySet creates an empty category set
func NewCategorySet() *CategorySet {
	return &CategorySet{
		order: make([]Category, 0),
		clubs: make(map[Category][]Club),
	}
}

// Add appends clubs to the category, declaring it if needed
func (cs *CategorySet) Add(category Category, clubs ...Club) {
	if _, exists := cs.clubs[category]; !exists {
		cs.order = append(cs.order, category)
		cs.clubs[category] = make([]Club, 0, len(clubs))
	}
	cs.clubs[category] = append(cs.clubs[category], clubs...)
}

// Categories returns the declared categories in declaration order
func (cs *CategorySet) Categories() []Category {
	out := make([]Category, len(cs.order))
	copy(out, cs.order)
	return out
}

// Get returns a copy of the clubs stored under category
func (cs *CategorySet) Get(category Category) ([]Club, bool) {
	clubs, exists := cs.clubs[category]
	if !exists {
		return nil, false
	}
	out := make([]Club, len(clubs))
	copy(out, clubs)
	return out, true
}

// All concatenates every category's clubs in declaration order. A club
// declared under two categories appears twice.
func (cs *CategorySet) All() []Club {
	out := make([]Club, 0, cs.Len())
	for _, category := range cs.order {
		out = append(out, cs.clubs[category]...)
	}
	return out
}

// Select returns the clubs visible for category: everything for CategoryAll,
// that category's clubs otherwise, and an empty list for unknown names.
func (cs *CategorySet) Select(category Category) []Club {
	if category.IsAll() {
		return cs.All()
	}
	clubs, exists := cs.Get(category)
	if !exists {
		return []Club{}
	}
	return clubs
}

// Len returns the total number of club entries across categories
func (cs *CategorySet) Len() int {
	total := 0
	for _, clubs := range cs.clubs {
		total += len(clubs)
	}
	return total
}
