package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/middleware"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/helpers"
)

// parseID reads a positive integer path parameter, answering 400 otherwise.
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

// queryID reads an optional positive integer query parameter.
// present is false when the key is missing; ok is false after a 400.
func queryID(ctx *gin.Context, key string) (id int64, present, ok bool) {
	raw, present := ctx.GetQuery(key)
	if !present {
		return 0, false, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(key+" must be a positive integer"))
		return 0, true, false
	}
	return id, true, true
}

// bindJSON decodes the request body, answering 400 on malformed input.
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewAPIResponse(data))
}

// respondList writes items, paginated when the request carries ?page=.
func respondList[T any](ctx *gin.Context, items []T) {
	if page, size, ok := helpers.ParsePaginationParams(ctx); ok {
		respond(ctx, http.StatusOK, helpers.Paginate(items, page, size))
		return
	}
	respond(ctx, http.StatusOK, items)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
