/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package pagination

import "strconv"

// DefaultPageSize is the number of items shown per page on every listing
const DefaultPageSize = 10

// Page is one fixed-size, 1-based slice of an ordered result set
type Page[T any] struct {
	Items      []T  // The items belonging to this page
	Number     int  // 1-based number of this page
	TotalPages int  // Total number of pages, at least 1
	TotalItems int  // Total number of items across all pages
	HasPrev    bool // True when a previous page exists
	HasNext    bool // True when a next page exists
}

// PrevNumber returns the number of the previous page. Only meaningful when HasPrev is true
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the number of the next page. Only meaningful when HasNext is true
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// Paginate slices items into pages of the given size and returns the requested one.
// The page number is 1-based. Values below 1 clamp to the first page, values past
// the end clamp to the last page, so an out-of-range request never comes back empty
// while items exist. An empty input yields a single empty page.
func Paginate[T any](items []T, size, number int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: pages,
		TotalItems: total,
		HasPrev:    number > 1,
		HasNext:    number < pages,
	}
}

// ParsePageNumber turns the raw "page" query value into a page number.
// An absent or non-numeric value means the first page.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
