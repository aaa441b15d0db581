package domain

// Hotel is the canonical entity every supplier record is normalized into.
// Nullable scalars are pointers so "absent" survives the JSON projection as
// null; text and collection fields are never nil.
type Hotel struct {
	ID                string    `json:"id"`
	DestinationID     *int64    `json:"destination_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Location          Location  `json:"location"`
	Amenities         Amenities `json:"amenities"`
	Images            Images    `json:"images"`
	BookingConditions []string  `json:"booking_conditions"`
}

type Location struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address *string  `json:"address"`
	City    *string  `json:"city"`
	Country *string  `json:"country"`
}

type Amenities struct {
	General []string `json:"general"`
	Room    []string `json:"room"`
}

type Images struct {
	Rooms     []Image `json:"rooms"`
	Site      []Image `json:"site"`
	Amenities []Image `json:"amenities"`
}

type Image struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

// NewHotel returns a Hotel with every collection allocated, so a record with
// all optional fields absent still projects as []/"" rather than null.
func NewHotel(id string) Hotel {
	return Hotel{
		ID:                id,
		Amenities:         Amenities{General: []string{}, Room: []string{}},
		Images:            Images{Rooms: []Image{}, Site: []Image{}, Amenities: []Image{}},
		BookingConditions: []string{},
	}
}
