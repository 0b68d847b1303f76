package pets

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"busca-pet/internal/platform/apperr"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		number, size int
		want         PageRequest
	}{
		{1, 20, PageRequest{1, 20}},
		{0, 20, PageRequest{1, 20}},
		{-3, 5, PageRequest{1, 5}},
		{2, 0, PageRequest{2, DefaultPageSize}},
		{2, 101, PageRequest{2, DefaultPageSize}},
		{2, 100, PageRequest{2, 100}},
		{math.MaxInt, 20, PageRequest{math.MaxInt/20 + 1, 20}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPageRequest(tt.number, tt.size))
	}
}

func TestPageRequest_OffsetNeverOverflows(t *testing.T) {
	for _, size := range []int{1, 7, 20, MaxPageSize} {
		p := NewPageRequest(math.MaxInt, size)
		assert.GreaterOrEqual(t, p.Offset(), 0, "size %d", size)
	}
	assert.GreaterOrEqual(t, ParsePageRequest("9223372036854775807", "20").Offset(), 0)
}

func TestParsePageRequest(t *testing.T) {
	assert.Equal(t, PageRequest{1, 20}, ParsePageRequest("", ""))
	assert.Equal(t, PageRequest{3, 10}, ParsePageRequest(" 3", "10 "))
	assert.Equal(t, PageRequest{1, 20}, ParsePageRequest("abc", "x"))
	assert.Equal(t, 20, ParsePageRequest("3", "10").Offset())
}

func TestPage_Navigation(t *testing.T) {
	tests := []struct {
		name      string
		page      Page
		pages     int
		next, prv bool
	}{
		{"empty", Page{TotalCount: 0, PageNumber: 1, PageSize: 20}, 0, false, false},
		{"exact", Page{TotalCount: 40, PageNumber: 2, PageSize: 20}, 2, false, true},
		{"first of two", Page{TotalCount: 25, PageNumber: 1, PageSize: 20}, 2, true, false},
		{"beyond last", Page{TotalCount: 25, PageNumber: 5, PageSize: 20}, 2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pages, tt.page.TotalPages())
			assert.Equal(t, tt.next, tt.page.HasNext())
			assert.Equal(t, tt.prv, tt.page.HasPrev())
		})
	}
}

func TestSearchFilter_Validate(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	assert.NoError(t, SearchFilter{}.Validate())
	assert.NoError(t, SearchFilter{Type: TypeBird, DisappearedFrom: &from, DisappearedTo: &to}.Validate())

	assert.ErrorIs(t, SearchFilter{Type: "Fish"}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, SearchFilter{DisappearedFrom: &from}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, SearchFilter{DisappearedTo: &to}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, SearchFilter{DisappearedFrom: &to, DisappearedTo: &from}.Validate(), apperr.ErrValidation)
}

func TestSearchFilter_NormalizeAndLogFields(t *testing.T) {
	f := SearchFilter{Name: "  rex ", Type: " Dog", City: " "}.Normalize()
	assert.Equal(t, "rex", f.Name)
	assert.Equal(t, TypeDog, f.Type)
	assert.Empty(t, f.City)

	assert.Equal(t, map[string]any{"filter_name": "rex", "filter_type": "Dog"}, f.LogFields())
}
