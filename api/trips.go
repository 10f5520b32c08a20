package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/astrotravel/spaceport/internal/repository"
	"github.com/astrotravel/spaceport/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TripHandler struct {
	service catalog.CatalogUseCase
	logger  *logrus.Logger
}

func NewTripHandler(service catalog.CatalogUseCase, logger *logrus.Logger) *TripHandler {
	return &TripHandler{service: service, logger: logger}
}

func (h *TripHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *TripHandler) list(c *gin.Context) {
	filter := repository.TripFilter{
		Destination: c.Query("destination"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.DepartsOn = &date
	}
	if raw := c.Query("passengers"); raw != "" {
		passengers, err := strconv.Atoi(raw)
		if err != nil || passengers < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passengers"})
			return
		}
		filter.MinSeats = passengers
	}

	trips, err := h.service.ListTrips(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) get(c *gin.Context) {
	trip, err := h.service.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
