package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // 1-based
)

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts pagination parameters from the request.
// ok is false when the caller did not ask for a page, in which case the
// full list should be returned.
func ParsePaginationParams(c *gin.Context) (page, size int, ok bool) {
	pageStr, present := c.GetQuery("page")
	if !present {
		return 0, 0, false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size, true
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	// Compare page counts before multiplying so a huge page cannot overflow.
	if totalItems <= 0 || page-1 >= (totalItems+size-1)/size {
		return totalItems, totalItems
	}

	start = (page - 1) * size
	end = start + size
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// Paginate slices items into the requested page.
func Paginate[T any](items []T, page, size int) dto.PaginatedResponse {
	start, end := CalculateSliceIndices(page, size, len(items))
	return dto.PaginatedResponse{
		Items:      items[start:end],
		Pagination: NewPaginationInfo(len(items), page, size),
	}
}
