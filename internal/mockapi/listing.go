package mockapi

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// containsFold reports whether s contains substr case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// sortByField orders items by the string field selected with keyOf,
// using a locale-aware comparator. The sort is stable so equal keys
// keep their store order.
func sortByField[T any](items []T, keyOf func(T) string, descending bool) {
	// Collators are not safe for concurrent use, so each sort gets its own.
	coll := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		cmp := coll.CompareString(keyOf(items[i]), keyOf(items[j]))
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// paginate slices out one page: items[(page-1)*limit : (page-1)*limit+limit],
// clamped to the collection bounds.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
