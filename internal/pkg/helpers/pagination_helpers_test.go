package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(25), info.TotalItems)

	// Page beyond the end clamps to the last page
	info = NewPaginationInfo(25, 99, 10)
	assert.Equal(t, 3, info.CurrentPage)

	// No items on page 1 still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)

	// Bad inputs fall back to defaults
	info = NewPaginationInfo(5, 0, 0)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, DefaultPageSize, info.PageSize)
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		total      int
		wantStart  int
		wantEnd    int
	}{
		{"first page", 1, 4, 10, 0, 4},
		{"middle page", 2, 4, 10, 4, 8},
		{"last partial page", 3, 4, 10, 8, 10},
		{"page beyond end clamps to last page", 99, 4, 10, 8, 10},
		{"page zero treated as first", 0, 4, 10, 0, 4},
		{"empty list", 1, 4, 0, 0, 0},
		{"size larger than list", 1, 50, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/courses"+query, nil)
		return c
	}

	page, size := ParsePaginationParams(newCtx("?page=2&size=5"), 10)
	assert.Equal(t, 2, page)
	assert.Equal(t, 5, size)

	// Missing params fall back to page 1 and the view's default size
	page, size = ParsePaginationParams(newCtx(""), 4)
	assert.Equal(t, 1, page)
	assert.Equal(t, 4, size)

	// Garbage and out-of-range values fall back as well
	page, size = ParsePaginationParams(newCtx("?page=abc&size=-3"), 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = ParsePaginationParams(newCtx("?page=0&size=9999"), 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)
}
