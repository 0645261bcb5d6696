package entity

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPropertyFilter_Empty(t *testing.T) {
	f := BuildPropertyFilter(url.Values{}, 9)

	assert.Nil(t, f.Status)
	assert.Nil(t, f.Category)
	assert.Nil(t, f.Type)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Nil(t, f.IsActive)
	assert.Equal(t, "", f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 9, f.Limit)
}

func TestBuildPropertyFilter_ValidEnums(t *testing.T) {
	q := url.Values{}
	q.Set("status", "sale")
	q.Set("category", "residential")
	q.Set("propertyType", "villa")
	q.Set("subType", "3bhk")
	q.Set("furnishedStatus", "semi_furnished")
	q.Set("facing", "north_east")

	f := BuildPropertyFilter(q, 9)

	assert.Equal(t, StatusSale, *f.Status)
	assert.Equal(t, CategoryResidential, *f.Category)
	assert.Equal(t, TypeVilla, *f.Type)
	assert.Equal(t, SubType3BHK, *f.SubType)
	assert.Equal(t, SemiFurnished, *f.Furnishing)
	assert.Equal(t, FacingNorthEast, *f.Facing)
}

func TestBuildPropertyFilter_InvalidEnumIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("status", "invalid-enum-value")
	q.Set("propertyType", "castle")
	q.Set("facing", "up")

	f := BuildPropertyFilter(q, 9)

	assert.Nil(t, f.Status)
	assert.Nil(t, f.Type)
	assert.Nil(t, f.Facing)
}

func TestBuildPropertyFilter_NumericFields(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "1500000")
	q.Set("maxPrice", "9000000")
	q.Set("minArea", "450.5")
	q.Set("bedrooms", "3")

	f := BuildPropertyFilter(q, 9)

	assert.Equal(t, int64(1500000), *f.MinPrice)
	assert.Equal(t, int64(9000000), *f.MaxPrice)
	assert.Equal(t, 450.5, *f.MinArea)
	assert.Equal(t, 3, *f.Bedrooms)
}

func TestBuildPropertyFilter_NonNumericTreatedAsAbsent(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "cheap")
	q.Set("bedrooms", "many")
	q.Set("maxArea", "-12")

	f := BuildPropertyFilter(q, 9)

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Nil(t, f.MaxArea)
}

func TestBuildPropertyFilter_PageDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("page", "abc")
	f := BuildPropertyFilter(q, 9)
	assert.Equal(t, 1, f.Page)

	q.Set("page", "-2")
	f = BuildPropertyFilter(q, 9)
	assert.Equal(t, 1, f.Page)

	q.Set("page", "4")
	q.Set("limit", "20")
	f = BuildPropertyFilter(q, 9)
	assert.Equal(t, 4, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 60, f.Offset())
}

func TestBuildPropertyFilter_IsActive(t *testing.T) {
	q := url.Values{}
	q.Set("isActive", "true")
	f := BuildPropertyFilter(q, 9)
	assert.NotNil(t, f.IsActive)
	assert.True(t, *f.IsActive)

	q.Set("isActive", "maybe")
	f = BuildPropertyFilter(q, 9)
	assert.Nil(t, f.IsActive)
}

func TestPropertyFilter_TotalPages(t *testing.T) {
	f := &PropertyFilter{Page: 1, Limit: 9}

	assert.Equal(t, 1, f.TotalPages(0))
	assert.Equal(t, 1, f.TotalPages(9))
	assert.Equal(t, 2, f.TotalPages(10))
	assert.Equal(t, 2, f.TotalPages(18))
	assert.Equal(t, 3, f.TotalPages(19))
}
