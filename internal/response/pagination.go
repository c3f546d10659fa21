// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"fmt"
	"reflect"
)

// PaginatorKey is the key under which pagination metadata is merged into
// paginated payloads.
const PaginatorKey = "paginator"

// Paginator exposes the state of a length-aware paginated query.
type Paginator interface {
	Total() int
	PerPage() int
	CurrentPage() int
}

// Meta is the pagination metadata attached to paginated responses.
type Meta struct {
	Pages       int `json:"pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// NewMeta derives Meta from p. Pages is ceil(total/per_page); a non-positive
// page size yields zero pages.
func NewMeta(p Paginator) Meta {
	total, perPage := p.Total(), p.PerPage()

	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return Meta{
		Pages:       pages,
		CurrentPage: p.CurrentPage(),
		PerPage:     perPage,
		Total:       total,
	}
}

// Page is a plain Paginator value.
type Page struct {
	TotalItems int
	Size       int
	Number     int
}

// NewPage returns a Page for total items split in pages of perPage, positioned
// at currentPage.
func NewPage(total, perPage, currentPage int) Page {
	return Page{TotalItems: total, Size: perPage, Number: currentPage}
}

func (p Page) Total() int       { return p.TotalItems }
func (p Page) PerPage() int     { return p.Size }
func (p Page) CurrentPage() int { return p.Number }

// Offset returns the number of items preceding the current page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// RespondWithPagination merges pagination metadata derived from p under
// PaginatorKey into data and responds with it.
//
// data must be a map with string keys. Anything else is a caller bug and
// panics with an error wrapping ErrDataNotMapping.
func (b Builder) RespondWithPagination(p Paginator, data any) Envelope {
	payload := toMapping(data)
	payload[PaginatorKey] = NewMeta(p)
	return b.Respond(payload)
}

// toMapping copies a string-keyed map of any element type into a fresh
// map[string]any.
func toMapping(data any) map[string]any {
	if m, ok := data.(map[string]any); ok {
		out := make(map[string]any, len(m)+1)
		for k, v := range m {
			out[k] = v
		}
		return out
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		panic(fmt.Errorf("%w: got %T", ErrDataNotMapping, data))
	}

	out := make(map[string]any, rv.Len()+1)
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}
