package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/schemas"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type BookingController struct {
	Service *services.HotelService
}

func NewBookingController(service *services.HotelService) *BookingController {
	return &BookingController{Service: service}
}

// CreateBooking handles POST /bookings/.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req schemas.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	booking, err := bc.Service.CreateBooking(req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles GET /bookings/.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.GetAllBookings()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking handles DELETE /bookings/:id, cancelling the booking and
// freeing its room.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, "Booking id must be an integer")
		return
	}

	result, err := bc.Service.CancelBooking(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
