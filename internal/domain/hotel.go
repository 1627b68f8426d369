package domain

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

var roomLabels = map[RoomType]string{
	RoomTypeStandard: "Standard Room",
	RoomTypeDeluxe:   "Deluxe Room",
	RoomTypeSuite:    "Suite",
}

var roomDescriptions = map[RoomType]string{
	RoomTypeStandard: "Comfortable room with essential amenities",
	RoomTypeDeluxe:   "Spacious room with premium amenities",
	RoomTypeSuite:    "Luxury suite with separate living area",
}

func (r RoomType) Label() string {
	if label, ok := roomLabels[r]; ok {
		return label
	}
	return string(r)
}

func (r RoomType) Description() string {
	return roomDescriptions[r]
}

// RoomOffering is one bookable room class within a hotel.
type RoomOffering struct {
	Type          RoomType `json:"type" yaml:"type"`
	PricePerNight float64  `json:"pricePerNight" yaml:"price_per_night"`
	Available     int      `json:"available" yaml:"available"`
}

// Hotel is a catalog entry. The catalog is immutable reference data; nothing
// in the booking path ever writes to it.
type Hotel struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Location    string         `json:"location" yaml:"location"`
	Description string         `json:"description" yaml:"description"`
	Image       string         `json:"image" yaml:"image"`
	Rating      float64        `json:"rating" yaml:"rating"`
	Rooms       []RoomOffering `json:"roomTypes" yaml:"rooms"`
}

// Room returns the offering for the given room type, if the hotel has one.
func (h Hotel) Room(roomType RoomType) (RoomOffering, bool) {
	for _, room := range h.Rooms {
		if room.Type == roomType {
			return room, true
		}
	}
	return RoomOffering{}, false
}
