package handlers

import (
	"net/http"

	request "fmrental_prestige/internal/adapter/http/dto/request"
	response "fmrental_prestige/internal/adapter/http/dto/response"
	"fmrental_prestige/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReservationHandler serves the booking form and the check-in desk.
type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservation  body      request.ReservationCreateRequest  true  "Reservation"
// @Success      201          {object}  response.ReservationCreatedResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var payload request.ReservationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		log.Debug().Err(err).Msg("reservation payload rejected")
		writeError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.ReservationCreatedResponse{Success: true, Code: created.Code, ID: created.ID.String()})
}

// ListReservations godoc
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Param        limit  query     int  false  "Maximum items (default 50)"
// @Success      200    {object}  response.ItemsResponse[response.ReservationResponse]
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /api/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	limit, err := request.ParseLimit(c.Query("limit"), usecase.DefaultReservationListLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(items))
}

// CheckIn godoc
// @Summary      Check a customer in
// @Tags         reservations
// @Produce      json
// @Param        code  path      string  true  "Reservation code"
// @Success      200   {object}  response.SuccessResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/checkin/{code} [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	if _, err := h.usecase.CheckIn(c.Request.Context(), c.Param("code")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
