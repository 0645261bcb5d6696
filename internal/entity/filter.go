package entity

import (
	"net/url"
	"strconv"
	"strings"
)

// PropertyFilter is the normalized search descriptor consumed by the
// property repository. Nil pointer fields mean "no constraint".
type PropertyFilter struct {
	Status     *TransactionStatus
	Category   *Category
	Type       *PropertyType
	SubType    *SubType
	MinPrice   *int64
	MaxPrice   *int64
	MinArea    *float64
	MaxArea    *float64
	Bedrooms   *int
	Bathrooms  *int
	Furnishing *Furnishing
	Parking    *Parking
	Facing     *Facing
	Search     string
	IsActive   *bool
	Page       int
	Limit      int
}

// Offset returns the row offset for the current page.
func (f *PropertyFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TotalPages computes the page count for a result total, never less than 1
// so clients always have a page to show.
func (f *PropertyFilter) TotalPages(total int64) int {
	pages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	if pages < 1 {
		return 1
	}
	return pages
}

// BuildPropertyFilter normalizes raw query parameters into a PropertyFilter.
// Parsing is deliberately lenient: unknown enum values and non-numeric input
// for numeric fields are dropped rather than rejected, so stale client
// filter state never breaks the search endpoint.
func BuildPropertyFilter(query url.Values, defaultLimit int) *PropertyFilter {
	f := &PropertyFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Page:   1,
		Limit:  defaultLimit,
	}

	if v := TransactionStatus(query.Get("status")); v.Valid() {
		f.Status = &v
	}
	if v := Category(query.Get("category")); v.Valid() {
		f.Category = &v
	}
	if v := PropertyType(query.Get("propertyType")); v.Valid() {
		f.Type = &v
	}
	if v := SubType(query.Get("subType")); v.Valid() {
		f.SubType = &v
	}
	if v := Furnishing(query.Get("furnishedStatus")); v.Valid() {
		f.Furnishing = &v
	}
	if v := Parking(query.Get("parking")); v.Valid() {
		f.Parking = &v
	}
	if v := Facing(query.Get("facing")); v.Valid() {
		f.Facing = &v
	}

	f.MinPrice = parseInt64(query.Get("minPrice"))
	f.MaxPrice = parseInt64(query.Get("maxPrice"))
	f.MinArea = parseFloat(query.Get("minArea"))
	f.MaxArea = parseFloat(query.Get("maxArea"))
	f.Bedrooms = parseInt(query.Get("bedrooms"))
	f.Bathrooms = parseInt(query.Get("bathrooms"))

	if raw := query.Get("isActive"); raw != "" {
		if b, err := strconv.ParseBool(strings.ToLower(raw)); err == nil {
			f.IsActive = &b
		}
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		f.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}

	return f
}

func parseInt64(raw string) *int64 {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
