package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/schemas"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type RentalController struct {
	Service *services.HotelService
}

func NewRentalController(service *services.HotelService) *RentalController {
	return &RentalController{Service: service}
}

// CreateRental handles POST /rentals/.
func (rc *RentalController) CreateRental(c *gin.Context) {
	var req schemas.RentalCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	rental, err := rc.Service.CreateRental(req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// GetRentals handles GET /rentals/.
func (rc *RentalController) GetRentals(c *gin.Context) {
	rentals, err := rc.Service.GetAllRentals()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// CompleteRental handles PUT /rentals/:id/complete, returning the final cost
// and freeing the room.
func (rc *RentalController) CompleteRental(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, "Rental id must be an integer")
		return
	}

	result, err := rc.Service.CompleteRental(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
