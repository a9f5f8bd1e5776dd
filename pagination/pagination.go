// Package pagination slices ordered sequences into 1-indexed pages of a fixed size.
//
// Out of range page numbers never fail: anything that is not a number opens the first page,
// anything below 1 or past the end opens the last one.
package pagination

import (
	"strconv"

	"gorm.io/gorm"
)

const PageSize = 10

type Page[T any] struct {
	Items    []T
	Number   int   // 1-indexed
	NumPages int   // at least 1, even for an empty sequence
	Count    int64 // items in the whole sequence
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page[T]) HasOtherPages() bool {
	return p.HasPrevious() || p.HasNext()
}

func (p Page[T]) PreviousNumber() int {
	if !p.HasPrevious() {
		return p.Number
	}
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	if !p.HasNext() {
		return p.Number
	}
	return p.Number + 1
}

// Range lists all page numbers, for rendering the paginator
func (p Page[T]) Range() []int {
	result := make([]int, p.NumPages)
	for i := range result {
		result[i] = i + 1
	}
	return result
}

func NumPages(count int64, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 1
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

// Number resolves the requested page (usually the "page" query parameter) to a valid page number
func Number(requested string, numPages int) int {
	n, err := strconv.Atoi(requested)
	if err != nil {
		return 1
	}
	if n < 1 || n > numPages {
		return numPages
	}
	return n
}

func window(number, pageSize int, count int64) (offset, limit int) {
	offset = (number - 1) * pageSize
	limit = pageSize
	if rest := int(count) - offset; rest < limit {
		limit = max(rest, 0)
	}
	return
}

// Paginate returns one page of an in-memory sequence. A pageSize below 1 is treated as 1.
func Paginate[T any](items []T, pageSize int, requested string) Page[T] {
	pageSize = max(pageSize, 1)
	count := int64(len(items))
	numPages := NumPages(count, pageSize)
	number := Number(requested, numPages)
	offset, limit := window(number, pageSize, count)
	return Page[T]{
		Items:    items[offset : offset+limit],
		Number:   number,
		NumPages: numPages,
		Count:    count,
	}
}

// PaginateQuery counts the rows of tx and loads one page of them with LIMIT/OFFSET.
// The scopes are applied to the loading query only, e.g. to preload relations.
func PaginateQuery[T any](tx *gorm.DB, pageSize int, requested string, scopes ...func(*gorm.DB) *gorm.DB) (page Page[T], err error) {
	pageSize = max(pageSize, 1)
	if err = tx.Session(&gorm.Session{}).Count(&page.Count).Error; err != nil {
		return
	}
	page.NumPages = NumPages(page.Count, pageSize)
	page.Number = Number(requested, page.NumPages)
	page.Items = []T{}
	offset, limit := window(page.Number, pageSize, page.Count)
	if limit == 0 {
		return
	}
	err = tx.Session(&gorm.Session{}).
		Scopes(scopes...).
		Offset(offset).
		Limit(limit).
		Find(&page.Items).Error
	return
}
