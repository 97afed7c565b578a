package handlers

import (
	"net/http"

	request "fmrental_prestige/internal/adapter/http/dto/request"
	response "fmrental_prestige/internal/adapter/http/dto/response"
	"fmrental_prestige/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// CreateReview godoc
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        review  body      request.ReviewCreateRequest  true  "Review"
// @Success      201     {object}  response.ReviewCreatedResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /api/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var payload request.ReviewCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.ReviewCreatedResponse{Success: true, ID: created.ID.String()})
}

// ListReviews godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        limit  query     int  false  "Maximum items (default 12)"
// @Success      200    {object}  response.ItemsResponse[response.ReviewResponse]
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /api/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	limit, err := request.ParseLimit(c.Query("limit"), usecase.DefaultReviewListLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(items))
}
