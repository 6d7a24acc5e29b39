package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses.
//
//	not found   -> 404
//	validation  -> 400 with per-field details
//	bad request -> 400
//	conflict    -> 409
//	anything else -> 500
func HandleAPIError(c *gin.Context, err error) {
	var detail *dto.ErrorDetail
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithSeverity(dto.ErrorSeverityWarning)
		if fields := apperrors.DetailsOf(err); len(fields) > 0 {
			detail = detail.WithDetails(fields)
			if len(fields) == 1 {
				for name := range fields {
					detail = detail.WithField(name)
				}
			}
		}
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email")
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Unhandled error")
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
