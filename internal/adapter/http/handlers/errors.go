package handlers

import (
	"errors"
	"net/http"

	"fmrental_prestige/internal/adapter/http/dto/request"
	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/usecase"
	"fmrental_prestige/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errStoreUnavailable  = pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store not configured", http.StatusInternalServerError)
	errReservationAbsent = pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Prenotazione non trovata", http.StatusNotFound)
)

// mapError translates usecase and validation errors into the HTTP error body.
func mapError(err error) *pkg.AppError {
	var ve *request.ValidationError
	var se *usecase.StoreError
	switch {
	case errors.As(err, &ve):
		return errInvalidPayload.WithDetails(ve.Error())
	case errors.Is(err, request.ErrInvalidLimit), errors.Is(err, usecase.ErrInvalidLimit):
		return errInvalidPayload.WithDetails("limit must be a positive integer")
	case errors.Is(err, usecase.ErrInvalidReservationInput), errors.Is(err, usecase.ErrInvalidReservationCode),
		errors.Is(err, usecase.ErrInvalidRating), errors.Is(err, usecase.ErrInvalidReviewInput):
		return errInvalidPayload.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrReservationNotFound):
		return errReservationAbsent
	case errors.Is(err, entities.ErrInvalidCheckInTransition):
		return pkg.NewDomainErrorSimple("INVALID_CHECK_IN_STATE", "Reservation check-in state is invalid", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return errStoreUnavailable
	case errors.As(err, &se):
		return pkg.NewDomainError("STORE_OPERATION_FAILED", "Document store operation failed", se.Err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
