package suppliers

import (
	"fmt"

	"hotels_merge/internal/domain"
	"hotels_merge/internal/vocab"
)

// Patagonia uses lowercase keys, publishes amenities as free text already
// space-delimited, and keys images by {url, description}. Location carries
// coordinates and address only; it never ships site images or booking
// conditions.
type Patagonia struct{ Base string }

func (Patagonia) Name() string { return "patagonia" }

func (p Patagonia) Endpoint() string { return p.Base + "/suppliers/patagonia" }

func (p Patagonia) Parse(raw map[string]any) (domain.Hotel, error) {
	id := lookupStr(raw, "id")
	if id == "" {
		return domain.Hotel{}, fmt.Errorf("%w: %s record without id", domain.ErrMalformedRecord, p.Name())
	}

	h := domain.NewHotel(id)
	h.DestinationID = lookupInt64(raw, "destination")
	h.Name = lookupStr(raw, "name")
	h.Description = lookupStr(raw, "info")
	h.Location.Lat = lookupFloat(raw, "lat")
	h.Location.Lng = lookupFloat(raw, "lng")
	h.Location.Address = ptrStr(lookupStr(raw, "address"))
	h.Amenities.General, h.Amenities.Room = vocab.Bucket(lookupStrSlice(raw, "amenities"), vocab.FoldCase)
	h.Images.Rooms = urlImages(raw, "images.rooms")
	h.Images.Amenities = urlImages(raw, "images.amenities")
	return h, nil
}

func urlImages(raw map[string]any, path string) []domain.Image {
	out := []domain.Image{}
	for _, img := range lookupMapSlice(raw, path) {
		out = append(out, domain.Image{
			Link:        lookupStr(img, "url"),
			Description: lookupStr(img, "description"),
		})
	}
	return out
}
