// Package catalog loads the static hotel dataset and serves read-only
// lookups against it. The catalog is loaded once at startup and never
// mutated; bookings snapshot the values they need at creation time.
package catalog

import (
	"fmt"
	"os"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	hotels []domain.Hotel
	byID   map[string]domain.Hotel
}

type catalogFile struct {
	Hotels []domain.Hotel `yaml:"hotels"`
}

// Load reads the catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(file.Hotels), nil
}

func New(hotels []domain.Hotel) *Catalog {
	byID := make(map[string]domain.Hotel, len(hotels))
	for _, h := range hotels {
		byID[h.ID] = h
	}
	return &Catalog{hotels: hotels, byID: byID}
}

// List returns all hotels in catalog order.
func (c *Catalog) List() []domain.Hotel {
	out := make([]domain.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

func (c *Catalog) GetByID(id string) (domain.Hotel, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// Room resolves a hotel's offering for the given room type.
func (c *Catalog) Room(hotelID string, roomType domain.RoomType) (domain.RoomOffering, bool) {
	hotel, ok := c.byID[hotelID]
	if !ok {
		return domain.RoomOffering{}, false
	}
	return hotel.Room(roomType)
}
