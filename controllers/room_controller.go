package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/models"
	"hotel-management-backend/schemas"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type RoomController struct {
	Service *services.HotelService
}

func NewRoomController(service *services.HotelService) *RoomController {
	return &RoomController{Service: service}
}

// CreateRoom handles POST /rooms/.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req schemas.RoomCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	room, err := rc.Service.CreateRoom(req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRooms handles GET /rooms/ with optional category and status_filter
// query parameters.
func (rc *RoomController) GetRooms(c *gin.Context) {
	var category *models.RoomCategory
	if raw := c.Query("category"); raw != "" {
		parsed, err := models.ParseRoomCategory(raw)
		if err != nil {
			utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		category = &parsed
	}

	var status *models.RoomStatus
	if raw := c.Query("status_filter"); raw != "" {
		parsed, err := models.ParseRoomStatus(raw)
		if err != nil {
			utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		status = &parsed
	}

	rooms, err := rc.Service.GetAllRooms(category, status)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetFreeRooms handles GET /rooms/free.
func (rc *RoomController) GetFreeRooms(c *gin.Context) {
	var category *models.RoomCategory
	if raw := c.Query("category"); raw != "" {
		parsed, err := models.ParseRoomCategory(raw)
		if err != nil {
			utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		category = &parsed
	}

	rooms, err := rc.Service.GetFreeRooms(category)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByNumber handles GET /rooms/:number.
func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, "Room number must be an integer")
		return
	}

	room, err := rc.Service.GetRoomByNumber(number)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if room == nil {
		utils.JSONDetail(c, http.StatusNotFound, fmt.Sprintf("Room number %d not found", number))
		return
	}
	c.JSON(http.StatusOK, services.RoomToResponse(*room))
}
