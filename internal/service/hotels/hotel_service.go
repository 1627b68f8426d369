package hotels

import (
	"errors"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

var ErrNotFound = errors.New("hotel not found")

type HotelUseCase interface {
	List() []domain.Hotel
	GetByID(id string) (domain.Hotel, error)
}

type Catalog interface {
	List() []domain.Hotel
	GetByID(id string) (domain.Hotel, bool)
}

// HotelService serves catalog reads. The catalog is immutable for the life
// of the process, so there is nothing to cache or invalidate.
type HotelService struct {
	catalog Catalog
}

func NewHotelService(catalog Catalog) *HotelService {
	return &HotelService{catalog: catalog}
}

func (s *HotelService) List() []domain.Hotel {
	return s.catalog.List()
}

func (s *HotelService) GetByID(id string) (domain.Hotel, error) {
	hotel, ok := s.catalog.GetByID(id)
	if !ok {
		return domain.Hotel{}, ErrNotFound
	}
	return hotel, nil
}

var _ HotelUseCase = (*HotelService)(nil)
