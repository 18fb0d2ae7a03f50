package pagination

import (
	"strconv"
	"sync"
)

// DefaultItemsPerPage matches the table's fixed page size.
const DefaultItemsPerPage = 5

// Ellipsis is the gap marker emitted by Window between non-adjacent pages.
const Ellipsis = "..."

// Cursor tracks the current page of the employee table. The search query is
// carried alongside it but no view consumes it yet.
type Cursor struct {
	mu           sync.Mutex
	currentPage  int
	searchQuery  string
	itemsPerPage int
}

func NewCursor(itemsPerPage int) *Cursor {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &Cursor{currentPage: 1, itemsPerPage: itemsPerPage}
}

func (c *Cursor) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

func (c *Cursor) ItemsPerPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsPerPage
}

// ChangePage moves to requested when 1 <= requested <= totalPages. An
// out-of-bounds request leaves the cursor unchanged and reports false.
func (c *Cursor) ChangePage(requested, totalPages int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if requested < 1 || requested > totalPages {
		return false
	}
	c.currentPage = requested
	return true
}

// Clamp pulls the cursor back into bounds after the collection shrank, so a
// deletion on the last page does not strand the view on an empty slice.
func (c *Cursor) Clamp(totalPages int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if totalPages < 1 {
		totalPages = 1
	}
	if c.currentPage > totalPages {
		c.currentPage = totalPages
	}
	if c.currentPage < 1 {
		c.currentPage = 1
	}
}

func (c *Cursor) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchQuery = query
}

func (c *Cursor) SearchQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchQuery
}

// TotalPages is max(1, ceil(count/itemsPerPage)); an empty collection still
// has one (empty) page.
func TotalPages(count, itemsPerPage int) int {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	pages := (count + itemsPerPage - 1) / itemsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns the sub-sequence for currentPage. A page beyond the end
// degrades to an empty or partial slice; callers re-clamp the cursor instead
// of treating that as an error.
func Slice[T any](items []T, currentPage, itemsPerPage int) []T {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	start := (currentPage - 1) * itemsPerPage
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Window produces the page labels for compact pagination controls: all pages
// when total <= 7, otherwise page 1, an optional gap, a five-wide band around
// current, an optional gap, and the last page.
func Window(total, current int) []string {
	var labels []string

	if total <= 7 {
		for i := 1; i <= total; i++ {
			labels = append(labels, strconv.Itoa(i))
		}
		return labels
	}

	labels = append(labels, "1")
	if current > 4 {
		labels = append(labels, Ellipsis)
	}

	start := current - 2
	if start < 2 {
		start = 2
	}
	end := current + 2
	if end > total-1 {
		end = total - 1
	}
	for i := start; i <= end; i++ {
		labels = append(labels, strconv.Itoa(i))
	}

	if current < total-3 {
		labels = append(labels, Ellipsis)
	}
	labels = append(labels, strconv.Itoa(total))
	return labels
}
