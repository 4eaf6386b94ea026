// Package pagination implements the fixed-size paging and the
// ellipsis-compressed page strip the stock and invoice tables render.
package pagination

// DefaultPageSize matches the storefront tables (7 rows per page).
const DefaultPageSize = 7

// Ellipsis marks a compressed gap in a page strip.
const Ellipsis = -1

// maxVisible is the strip length above which pages get compressed.
const maxVisible = 5

// TotalPages returns the number of pages needed for total items.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Clamp forces page into [1, totalPages] (1 when there are no pages).
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the window of items for a 1-based page.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = Clamp(page, TotalPages(len(items), size))
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageNumbers builds the page strip: all pages when few, otherwise the
// first page, a window around the current page, and the last page with
// Ellipsis filling the gaps.
func PageNumbers(totalPages, current int) []int {
	if totalPages <= maxVisible {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4, Ellipsis, totalPages}
	case current >= totalPages-2:
		return []int{1, Ellipsis, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, totalPages}
	}
}
