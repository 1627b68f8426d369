package booking

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Domenick1991/hotelbooking/internal/dates"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/pricing"
	"go.uber.org/zap"
)

// DefaultMaxGuests caps the party size of a single booking.
const DefaultMaxGuests = 6

var ErrHotelNotFound = errors.New("hotel not found")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type BookingUseCase interface {
	CreateBooking(hotelID string, input BookingInput) (domain.Booking, error)
	CancelBooking(id string) (domain.Booking, bool)
	RemoveBooking(id string)
	GetBooking(id string) (domain.Booking, bool)
	ListBookings() []domain.Booking
	HasHydrated() bool
	Quote(hotelID string, roomType domain.RoomType, checkIn, checkOut domain.Date) (Quote, error)
}

// BookingStore is the slice of the store the form logic needs.
type BookingStore interface {
	Create(req domain.CreateBookingRequest) domain.Booking
	UpdateStatus(id string, status domain.BookingStatus)
	Remove(id string)
	GetByID(id string) (domain.Booking, bool)
	ListSortedByCheckIn() []domain.Booking
	HasHydrated() bool
}

type Catalog interface {
	GetByID(id string) (domain.Hotel, bool)
}

// BookingInput is the raw form submission for one booking.
type BookingInput struct {
	GuestName       string          `json:"guest_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	RoomType        domain.RoomType `json:"room_type"`
	CheckInDate     domain.Date     `json:"check_in_date"`
	CheckOutDate    domain.Date     `json:"check_out_date"`
	Guests          int             `json:"guests"`
	SpecialRequests string          `json:"special_requests"`
}

// Quote is the live price summary for a prospective stay.
type Quote struct {
	RoomType       domain.RoomType `json:"room_type"`
	PricePerNight  float64         `json:"price_per_night"`
	Nights         int             `json:"nights"`
	TotalPrice     float64         `json:"total_price"`
	FormattedTotal string          `json:"formatted_total"`
}

type Service struct {
	store     BookingStore
	catalog   Catalog
	maxGuests int
	logger    *zap.Logger
}

type ServiceOption func(*Service)

func WithMaxGuests(max int) ServiceOption {
	return func(s *Service) { s.maxGuests = max }
}

func NewService(store BookingStore, catalog Catalog, logger *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		catalog:   catalog,
		maxGuests: DefaultMaxGuests,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultInput returns the pre-filled form for a hotel: its first room
// offering, a check-in of today and a check-out of tomorrow.
func (s *Service) DefaultInput(hotel domain.Hotel) BookingInput {
	input := BookingInput{
		CheckInDate:  dates.Today(),
		CheckOutDate: dates.Tomorrow(),
		Guests:       1,
	}
	if len(hotel.Rooms) > 0 {
		input.RoomType = hotel.Rooms[0].Type
	}
	return input
}

// AdjustCheckIn applies a check-in edit to the form. When the new check-in
// lands on or after the current check-out, the check-out advances to the
// next day so the range stays bookable. This is the only automatic
// cross-field mutation.
func AdjustCheckIn(input BookingInput, checkIn domain.Date) BookingInput {
	input.CheckInDate = checkIn
	if !input.CheckOutDate.IsZero() && !checkIn.Before(input.CheckOutDate) {
		input.CheckOutDate = checkIn.AddDays(1)
	}
	return input
}

// Validate checks the form against the target hotel. Every failing field is
// reported; a nil result means the input is bookable.
func (s *Service) Validate(hotel domain.Hotel, input BookingInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.GuestName) == "" {
		errs["guestName"] = ErrRequiredField
	}

	if strings.TrimSpace(input.Email) == "" {
		errs["email"] = ErrRequiredField
	} else if !emailPattern.MatchString(input.Email) {
		errs["email"] = ErrInvalidFormat
	}

	if input.CheckInDate.IsZero() {
		errs["checkInDate"] = ErrRequiredField
	}

	if input.CheckOutDate.IsZero() {
		errs["checkOutDate"] = ErrRequiredField
	} else if !input.CheckInDate.IsZero() && dates.Nights(input.CheckInDate, input.CheckOutDate) < 1 {
		errs["checkOutDate"] = ErrInvalidRange
	}

	if _, ok := hotel.Room(input.RoomType); !ok {
		errs["roomType"] = ErrUnknownRoomType
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateBooking validates the input against the hotel, snapshots the room
// price, computes the total and hands the draft to the store. It never
// partially commits: either the store receives a fully formed request or the
// caller gets the accumulated field errors.
func (s *Service) CreateBooking(hotelID string, input BookingInput) (domain.Booking, error) {
	hotel, ok := s.catalog.GetByID(hotelID)
	if !ok {
		return domain.Booking{}, ErrHotelNotFound
	}

	if errs := s.Validate(hotel, input); errs != nil {
		return domain.Booking{}, errs
	}

	room, _ := hotel.Room(input.RoomType)
	nights := dates.Nights(input.CheckInDate, input.CheckOutDate)

	booking := s.store.Create(domain.CreateBookingRequest{
		GuestName:       strings.TrimSpace(input.GuestName),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		HotelID:         hotel.ID,
		HotelName:       hotel.Name,
		RoomType:        room.Type,
		PricePerNight:   room.PricePerNight,
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		Guests:          s.clampGuests(input.Guests),
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		TotalPrice:      pricing.Total(room.PricePerNight, nights),
	})

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("hotel_id", booking.HotelID),
		zap.String("room_type", string(booking.RoomType)),
		zap.Float64("total_price", booking.TotalPrice),
	)
	return booking, nil
}

// CancelBooking marks the booking cancelled. Cancellation is terminal, so a
// booking that is already cancelled is returned unchanged. The second return
// is false when the id is unknown.
func (s *Service) CancelBooking(id string) (domain.Booking, bool) {
	current, ok := s.store.GetByID(id)
	if !ok {
		return domain.Booking{}, false
	}
	if !current.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return current, true
	}

	s.store.UpdateStatus(id, domain.BookingStatusCancelled)
	updated, _ := s.store.GetByID(id)
	s.logger.Info("booking cancelled", zap.String("booking_id", id))
	return updated, true
}

func (s *Service) RemoveBooking(id string) {
	s.store.Remove(id)
}

func (s *Service) GetBooking(id string) (domain.Booking, bool) {
	return s.store.GetByID(id)
}

func (s *Service) ListBookings() []domain.Booking {
	return s.store.ListSortedByCheckIn()
}

func (s *Service) HasHydrated() bool {
	return s.store.HasHydrated()
}

// Quote prices a prospective stay without creating anything. An invalid
// range quotes as zero nights, mirroring the live summary on the form.
func (s *Service) Quote(hotelID string, roomType domain.RoomType, checkIn, checkOut domain.Date) (Quote, error) {
	hotel, ok := s.catalog.GetByID(hotelID)
	if !ok {
		return Quote{}, ErrHotelNotFound
	}
	room, ok := hotel.Room(roomType)
	if !ok {
		return Quote{}, FieldErrors{"roomType": ErrUnknownRoomType}
	}

	nights := dates.Nights(checkIn, checkOut)
	total := pricing.Total(room.PricePerNight, nights)
	return Quote{
		RoomType:       room.Type,
		PricePerNight:  room.PricePerNight,
		Nights:         nights,
		TotalPrice:     total,
		FormattedTotal: pricing.FormatUSD(total),
	}, nil
}

func (s *Service) clampGuests(guests int) int {
	if guests < 1 {
		return 1
	}
	if guests > s.maxGuests {
		return s.maxGuests
	}
	return guests
}

var _ BookingUseCase = (*Service)(nil)
