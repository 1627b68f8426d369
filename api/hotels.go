package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/service/hotels"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service hotels.HotelUseCase
}

func NewHotelHandler(service hotels.HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *HotelHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

func (h *HotelHandler) get(c *gin.Context) {
	hotel, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, hotels.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hotel)
}
