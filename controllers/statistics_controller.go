package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type StatisticsController struct {
	Service *services.HotelService
}

func NewStatisticsController(service *services.HotelService) *StatisticsController {
	return &StatisticsController{Service: service}
}

// GetStatistics handles GET /statistics/.
func (sc *StatisticsController) GetStatistics(c *gin.Context) {
	stats, err := sc.Service.GetStatistics()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
