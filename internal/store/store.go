// Package store owns the booking collection. All mutation goes through the
// Store; persistence is a save-after-mutate side effect that never fails the
// in-memory operation.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Store struct {
	mu       sync.Mutex
	bookings []domain.Booking
	hydrated bool

	storage Storage
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides booking id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(storage Storage, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted collection. It runs once per session; a
// missing or corrupt record degrades to an empty collection instead of
// failing startup. The hydrated flag flips regardless, so consumers can tell
// "not loaded yet" from "loaded and empty".
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}

	bookings, err := s.storage.Load()
	if err != nil {
		s.logger.Warn("failed to load persisted bookings, starting empty", zap.Error(err))
		bookings = nil
	}
	s.bookings = bookings
	s.hydrated = true
}

func (s *Store) HasHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Create adds a booking from a validated request. The new booking is
// prepended, so the collection stays most-recent-first.
func (s *Store) Create(req domain.CreateBookingRequest) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := domain.Booking{
		ID:              s.newID(),
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		HotelID:         req.HotelID,
		HotelName:       req.HotelName,
		RoomType:        req.RoomType,
		PricePerNight:   req.PricePerNight,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      req.TotalPrice,
		Status:          domain.BookingStatusConfirmed,
		CreatedAt:       s.now(),
	}

	s.bookings = append([]domain.Booking{booking}, s.bookings...)
	s.persist()
	return booking
}

// UpdateStatus replaces the status of the booking with the given id, leaving
// every other field untouched. Unknown ids are a silent no-op.
func (s *Store) UpdateStatus(id string, status domain.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			s.persist()
			return
		}
	}
}

// Remove deletes the booking with the given id if present. Unknown ids are a
// silent no-op, so Remove is idempotent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetByID(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// ListSortedByCheckIn returns the collection ascending by check-in date.
// The sort is stable over the insertion order, so bookings sharing a
// check-in date keep their most-recent-created-first order.
func (s *Store) ListSortedByCheckIn() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CheckInDate.Before(out[j].CheckInDate)
	})
	return out
}

// persist writes the collection through the storage backend. A failed write
// is logged and dropped; the in-memory state stays authoritative for the
// session. Callers must hold the lock.
func (s *Store) persist() {
	snapshot := make([]domain.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	if err := s.storage.Save(snapshot); err != nil {
		s.logger.Warn("failed to persist bookings", zap.Error(err))
	}
}
