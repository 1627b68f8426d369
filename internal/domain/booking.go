package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CanTransitionTo reports whether a booking may move from s to next.
// Cancellation is terminal; nothing else ever changes status.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending:
		return next == BookingStatusCancelled
	default:
		return false
	}
}

// Booking is a reservation with catalog values snapshotted at creation time.
// PricePerNight and TotalPrice are frozen; later catalog changes never touch
// an existing booking.
type Booking struct {
	ID              string        `json:"id"`
	GuestName       string        `json:"guestName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	HotelID         string        `json:"hotelId"`
	HotelName       string        `json:"hotelName"`
	RoomType        RoomType      `json:"roomType"`
	PricePerNight   float64       `json:"pricePerNight"`
	CheckInDate     Date          `json:"checkInDate"`
	CheckOutDate    Date          `json:"checkOutDate"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// CreateBookingRequest is a fully validated booking draft handed to the
// store. The store fills in ID, Status and CreatedAt.
type CreateBookingRequest struct {
	GuestName       string
	Email           string
	Phone           string
	HotelID         string
	HotelName       string
	RoomType        RoomType
	PricePerNight   float64
	CheckInDate     Date
	CheckOutDate    Date
	Guests          int
	SpecialRequests string
	TotalPrice      float64
}
