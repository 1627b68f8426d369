package booking

import (
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/catalog"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopStorage struct{}

func (nopStorage) Load() ([]domain.Booking, error) { return nil, nil }
func (nopStorage) Save([]domain.Booking) error     { return nil }

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Hotel{
		{
			ID:   "grand-plaza",
			Name: "Grand Plaza Hotel",
			Rooms: []domain.RoomOffering{
				{Type: domain.RoomTypeStandard, PricePerNight: 150, Available: 20},
				{Type: domain.RoomTypeDeluxe, PricePerNight: 250, Available: 15},
			},
		},
		{
			ID:    "empty-hotel",
			Name:  "No Rooms Inn",
			Rooms: nil,
		},
	})
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(nopStorage{}, zap.NewNop())
	st.Hydrate()
	return NewService(st, testCatalog(), zap.NewNop())
}

func validInput() BookingInput {
	return BookingInput{
		GuestName:    "Jane Doe",
		Email:        "jane@example.com",
		RoomType:     domain.RoomTypeStandard,
		CheckInDate:  domain.NewDate(2024, time.June, 1),
		CheckOutDate: domain.NewDate(2024, time.June, 4),
		Guests:       2,
	}
}

func TestCreateBooking(t *testing.T) {
	svc := newTestService(t)

	booking, err := svc.CreateBooking("grand-plaza", validInput())
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Grand Plaza Hotel", booking.HotelName)
	assert.Equal(t, 150.0, booking.PricePerNight)
	assert.Equal(t, 450.0, booking.TotalPrice)

	listed := svc.ListBookings()
	require.Len(t, listed, 1)
	assert.Equal(t, booking.ID, listed[0].ID)
}

func TestCreateBookingUnknownHotel(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateBooking("no-such-hotel", validInput())
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestCreateBookingMissingGuestName(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.GuestName = "   "

	_, err := svc.CreateBooking("grand-plaza", input)
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrRequiredField, errs["guestName"])

	assert.Empty(t, svc.ListBookings())
}

func TestCreateBookingInvalidEmail(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.Email = "not-an-email"

	_, err := svc.CreateBooking("grand-plaza", input)
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ErrInvalidFormat, errs["email"])
}

func TestCreateBookingCheckOutEqualsCheckIn(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.CheckOutDate = input.CheckInDate

	_, err := svc.CreateBooking("grand-plaza", input)
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ErrInvalidRange, errs["checkOutDate"])
}

func TestCreateBookingUnknownRoomType(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.RoomType = domain.RoomTypeSuite // not offered by grand-plaza

	_, err := svc.CreateBooking("grand-plaza", input)
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ErrUnknownRoomType, errs["roomType"])
}

func TestCreateBookingAccumulatesErrors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateBooking("grand-plaza", BookingInput{RoomType: domain.RoomTypeSuite})
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)

	assert.Equal(t, FieldErrors{
		"guestName":    ErrRequiredField,
		"email":        ErrRequiredField,
		"checkInDate":  ErrRequiredField,
		"checkOutDate": ErrRequiredField,
		"roomType":     ErrUnknownRoomType,
	}, errs)
}

func TestCreateBookingClampsGuests(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.Guests = 0
	booking, err := svc.CreateBooking("grand-plaza", input)
	require.NoError(t, err)
	assert.Equal(t, 1, booking.Guests)

	input.Guests = 99
	booking, err = svc.CreateBooking("grand-plaza", input)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxGuests, booking.Guests)
}

func TestAdjustCheckIn(t *testing.T) {
	input := validInput() // 2024-06-01 .. 2024-06-04

	// moving check-in past check-out pushes check-out to the next day
	adjusted := AdjustCheckIn(input, domain.NewDate(2024, time.June, 10))
	assert.Equal(t, "2024-06-10", adjusted.CheckInDate.String())
	assert.Equal(t, "2024-06-11", adjusted.CheckOutDate.String())

	// equal dates also advance
	adjusted = AdjustCheckIn(input, domain.NewDate(2024, time.June, 4))
	assert.Equal(t, "2024-06-05", adjusted.CheckOutDate.String())

	// an earlier check-in leaves check-out alone
	adjusted = AdjustCheckIn(input, domain.NewDate(2024, time.May, 20))
	assert.Equal(t, "2024-06-04", adjusted.CheckOutDate.String())
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateBooking("grand-plaza", validInput())
	require.NoError(t, err)

	cancelled, ok := svc.CancelBooking(created.ID)
	require.True(t, ok)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	// everything except the status is untouched
	cancelled.Status = created.Status
	assert.Equal(t, created, cancelled)

	// cancellation is terminal; a second cancel changes nothing
	again, ok := svc.CancelBooking(created.ID)
	require.True(t, ok)
	assert.Equal(t, domain.BookingStatusCancelled, again.Status)
}

func TestCancelBookingUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, ok := svc.CancelBooking("no-such-id")
	assert.False(t, ok)
}

func TestRemoveBooking(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateBooking("grand-plaza", validInput())
	require.NoError(t, err)

	svc.RemoveBooking(created.ID)
	svc.RemoveBooking(created.ID)

	assert.Empty(t, svc.ListBookings())
}

func TestQuote(t *testing.T) {
	svc := newTestService(t)

	quote, err := svc.Quote("grand-plaza", domain.RoomTypeDeluxe,
		domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 4))
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 250.0, quote.PricePerNight)
	assert.Equal(t, 750.0, quote.TotalPrice)
	assert.Equal(t, "$750.00", quote.FormattedTotal)
}

func TestQuoteInvalidRangeIsZeroTotal(t *testing.T) {
	svc := newTestService(t)

	quote, err := svc.Quote("grand-plaza", domain.RoomTypeStandard,
		domain.NewDate(2024, time.June, 4), domain.NewDate(2024, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, -3, quote.Nights)
	assert.Equal(t, 0.0, quote.TotalPrice)
}

func TestQuoteUnknownRoomType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Quote("empty-hotel", domain.RoomTypeStandard,
		domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 2))
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ErrUnknownRoomType, errs["roomType"])
}

func TestDefaultInput(t *testing.T) {
	svc := newTestService(t)
	hotel, ok := testCatalog().GetByID("grand-plaza")
	require.True(t, ok)

	input := svc.DefaultInput(hotel)
	assert.Equal(t, domain.RoomTypeStandard, input.RoomType)
	assert.Equal(t, 1, input.Guests)
	assert.Equal(t, 1, input.CheckInDate.DaysUntil(input.CheckOutDate))
}
