package suppliers

import (
	"fmt"

	"hotels_merge/internal/domain"
)

// Paperflies uses snake_case keys, ships amenities already classified into
// general/room buckets, and is the only supplier with booking conditions.
// Its location block carries address and country only.
type Paperflies struct{ Base string }

func (Paperflies) Name() string { return "paperflies" }

func (p Paperflies) Endpoint() string { return p.Base + "/suppliers/paperflies" }

func (p Paperflies) Parse(raw map[string]any) (domain.Hotel, error) {
	id := lookupStr(raw, "hotel_id")
	if id == "" {
		return domain.Hotel{}, fmt.Errorf("%w: %s record without hotel_id", domain.ErrMalformedRecord, p.Name())
	}

	h := domain.NewHotel(id)
	h.DestinationID = lookupInt64(raw, "destination_id")
	h.Name = lookupStr(raw, "hotel_name")
	h.Description = lookupStr(raw, "details")
	h.Location.Address = ptrStr(lookupStr(raw, "location.address"))
	h.Location.Country = ptrStr(lookupStr(raw, "location.country"))

	// Pre-classified amenities pass through unchanged; absent buckets stay
	// empty sets.
	h.Amenities.General = append(h.Amenities.General, lookupStrSlice(raw, "amenities.general")...)
	h.Amenities.Room = append(h.Amenities.Room, lookupStrSlice(raw, "amenities.room")...)

	h.Images.Rooms = captionedImages(raw, "images.rooms")
	h.Images.Site = captionedImages(raw, "images.site")
	h.BookingConditions = append(h.BookingConditions, lookupStrSlice(raw, "booking_conditions")...)
	return h, nil
}

// captionedImages maps this supplier's {link, caption} pairs onto the
// canonical {link, description} shape.
func captionedImages(raw map[string]any, path string) []domain.Image {
	out := []domain.Image{}
	for _, img := range lookupMapSlice(raw, path) {
		out = append(out, domain.Image{
			Link:        lookupStr(img, "link"),
			Description: lookupStr(img, "caption"),
		})
	}
	return out
}
