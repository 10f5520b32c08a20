package api

import (
	"net/http"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/astrotravel/spaceport/internal/repository"
	"github.com/astrotravel/spaceport/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DestinationHandler struct {
	service catalog.CatalogUseCase
	logger  *logrus.Logger
}

func NewDestinationHandler(service catalog.CatalogUseCase, logger *logrus.Logger) *DestinationHandler {
	return &DestinationHandler{service: service, logger: logger}
}

func (h *DestinationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *DestinationHandler) list(c *gin.Context) {
	filter := repository.DestinationFilter{
		Type:     domain.DestinationType(c.Query("type")),
		Featured: c.Query("featured") == "true",
	}

	destinations, err := h.service.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) get(c *gin.Context) {
	destination, err := h.service.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}
