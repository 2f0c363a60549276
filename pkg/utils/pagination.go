package utils

import "strconv"

const QuestionsPerPage = 10

// ParsePage reads a 1-based page number. Anything that is not a positive
// integer means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the items of the given 1-based page. A page past the end
// yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
