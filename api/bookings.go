package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/pricing"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	HotelID         string          `json:"hotel_id"`
	GuestName       string          `json:"guest_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	RoomType        domain.RoomType `json:"room_type"`
	CheckInDate     domain.Date     `json:"check_in_date"`
	CheckOutDate    domain.Date     `json:"check_out_date"`
	Guests          int             `json:"guests"`
	SpecialRequests string          `json:"special_requests"`
}

type bookingResponse struct {
	ID              string  `json:"id"`
	GuestName       string  `json:"guest_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	HotelID         string  `json:"hotel_id"`
	HotelName       string  `json:"hotel_name"`
	RoomType        string  `json:"room_type"`
	RoomLabel       string  `json:"room_label"`
	PricePerNight   float64 `json:"price_per_night"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Guests          int     `json:"guests"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	TotalPrice      float64 `json:"total_price"`
	FormattedTotal  string  `json:"formatted_total"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type bookingListResponse struct {
	Hydrated bool              `json:"hydrated"`
	Bookings []bookingResponse `json:"bookings"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/quote", h.quote)
	router.GET("/:id", h.get)
	router.POST("/:id/cancel", h.cancel)
	router.DELETE("/:id", h.remove)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(req.HotelID, booking.BookingInput{
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		RoomType:        req.RoomType,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings := h.service.ListBookings()
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, bookingListResponse{
		Hydrated: h.service.HasHydrated(),
		Bookings: out,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	b, ok := h.service.GetBooking(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, ok := h.service.CancelBooking(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) remove(c *gin.Context) {
	h.service.RemoveBooking(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) quote(c *gin.Context) {
	checkIn, err := domain.ParseDate(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in"})
		return
	}
	checkOut, err := domain.ParseDate(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out"})
		return
	}

	quote, err := h.service.Quote(c.Query("hotel_id"), domain.RoomType(c.Query("room_type")), checkIn, checkOut)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// writeBookingError maps service errors to responses: an unknown hotel is a
// 404, accumulated field errors come back as a 422 with the field→code map.
func writeBookingError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrHotelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var fieldErrs booking.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		GuestName:       b.GuestName,
		Email:           b.Email,
		Phone:           b.Phone,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		RoomType:        string(b.RoomType),
		RoomLabel:       b.RoomType.Label(),
		PricePerNight:   b.PricePerNight,
		CheckInDate:     b.CheckInDate.String(),
		CheckOutDate:    b.CheckOutDate.String(),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      b.TotalPrice,
		FormattedTotal:  pricing.FormatUSD(b.TotalPrice),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
