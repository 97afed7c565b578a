package routes

import (
	"fmrental_prestige/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI          = "/api"
	PathReservations = "/reservations"
	PathCheckIn      = "/checkin"
	PathReviews      = "/reviews"
)

func addRentalRoutes(rg *gin.RouterGroup, reservationHandler *handlers.ReservationHandler, reviewHandler *handlers.ReviewHandler) {
	reservations := rg.Group(PathReservations)
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("", reservationHandler.ListReservations)
	}

	rg.POST(PathCheckIn+"/:code", reservationHandler.CheckIn)

	reviews := rg.Group(PathReviews)
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("", reviewHandler.ListReviews)
	}
}
