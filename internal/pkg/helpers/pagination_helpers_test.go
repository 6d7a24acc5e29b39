package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCalculateSliceIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size, total int
		start, end        int
	}{
		{page: 1, size: 10, total: 25, start: 0, end: 10},
		{page: 3, size: 10, total: 25, start: 20, end: 25},
		{page: 4, size: 10, total: 25, start: 25, end: 25},
		{page: 0, size: 0, total: 5, start: 0, end: 5},
		{page: math.MaxInt, size: 10, total: 3, start: 3, end: 3},
		{page: math.MaxInt, size: MaxPageSize, total: 0, start: 0, end: 0},
	}
	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
		if start != tt.start || end != tt.end {
			t.Fatalf("CalculateSliceIndices(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, tt.total, start, end, tt.start, tt.end)
		}
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}
	got := Paginate(items, 2, 2)

	page, ok := got.Items.([]int)
	if !ok || len(page) != 2 || page[0] != 3 || page[1] != 4 {
		t.Fatalf("items = %v, want [3 4]", got.Items)
	}
	if got.Pagination.TotalPages != 3 || got.Pagination.TotalItems != 5 {
		t.Fatalf("pagination = %+v, want 3 pages of 5 items", got.Pagination)
	}
}

func TestPaginatePastTheEnd(t *testing.T) {
	t.Parallel()

	got := Paginate([]int{1, 2, 3}, math.MaxInt, 10)
	if page, ok := got.Items.([]int); !ok || len(page) != 0 {
		t.Fatalf("items = %v, want empty page", got.Items)
	}
	if got.Pagination.CurrentPage != 1 || got.Pagination.TotalItems != 3 {
		t.Fatalf("pagination = %+v, want clamped to page 1 of 3 items", got.Pagination)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/students", nil)
	if _, _, ok := ParsePaginationParams(c); ok {
		t.Fatal("expected no pagination without page parameter")
	}

	c.Request = httptest.NewRequest("GET", "/api/students?page=2&size=500", nil)
	page, size, ok := ParsePaginationParams(c)
	if !ok || page != 2 || size != DefaultPageSize {
		t.Fatalf("got (%d, %d, %v), want (2, %d, true)", page, size, ok, DefaultPageSize)
	}
}
