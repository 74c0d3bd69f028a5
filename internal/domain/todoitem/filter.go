package todoitem

// Filter holds optional filter criteria for listing items.
// A zero-value Filter matches every item.
type Filter struct {
	ListID *int64
}

// ByList returns a Filter matching the items of a single list.
func ByList(listID int64) Filter {
	return Filter{ListID: &listID}
}

// Matches reports whether the item satisfies the filter.
func (f Filter) Matches(t *TodoItem) bool {
	if f.ListID == nil {
		return true
	}
	return t.BelongsTo(*f.ListID)
}
