package model

// Category names a group of clubs on the member page
type Category string

// CategoryAll is the synthetic category covering every declared category
const CategoryAll Category = "전체"

// Default categories used by the seed data
const (
	CategoryApplied   Category = "지원한 동아리"
	CategoryActive    Category = "현재 활동 중인 동아리"
	CategoryFavorites Category = "찜한 동아리"
)

// String returns the display name of the category
func (c Category) String() string {
	return string(c)
}

// IsAll returns true for the synthetic umbrella category
func (c Category) IsAll() bool {
	return c == CategoryAll
}
