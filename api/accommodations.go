package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/astrotravel/spaceport/internal/repository"
	"github.com/astrotravel/spaceport/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AccommodationHandler struct {
	service catalog.CatalogUseCase
	logger  *logrus.Logger
}

func NewAccommodationHandler(service catalog.CatalogUseCase, logger *logrus.Logger) *AccommodationHandler {
	return &AccommodationHandler{service: service, logger: logger}
}

func (h *AccommodationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *AccommodationHandler) list(c *gin.Context) {
	filter := repository.AccommodationFilter{
		DestinationID: c.Query("destinationId"),
		Type:          domain.AccommodationType(c.Query("type")),
	}
	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accommodations, err := h.service.ListAccommodations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, accommodations)
}

func (h *AccommodationHandler) get(c *gin.Context) {
	accommodation, err := h.service.GetAccommodation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func priceParam(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}
