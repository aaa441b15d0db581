package app

import (
	"strconv"

	"hotels_merge/internal/domain"
)

// Catalog is the merged entity set for one run: exactly one Hotel per id,
// folded in input order. Ids are kept in first-seen order so query output is
// deterministic.
type Catalog struct {
	byID  map[string]*domain.Hotel
	order []string
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*domain.Hotel)}
}

// Merge folds a sequence of canonical hotels into one record per id.
// The sequence must already be concatenated in the fixed supplier order;
// several field rules below are order-dependent.
func Merge(hotels []domain.Hotel) *Catalog {
	c := NewCatalog()
	for _, h := range hotels {
		c.Add(h)
	}
	return c
}

// Add registers h as the first record for its id, or folds its fields into
// the existing record. Per-field rules:
//
//	name                later non-empty value wins
//	description         longer value wins, ties keep the existing one
//	location.*          first present value wins, per field
//	amenities.*         set union
//	images.*            concat, deduplicated by full {link,description} equality
//	booking_conditions  set union
//	id, destination_id  never altered after first registration
func (c *Catalog) Add(h domain.Hotel) {
	existing, ok := c.byID[h.ID]
	if !ok {
		own := h
		c.byID[h.ID] = &own
		c.order = append(c.order, h.ID)
		return
	}

	if h.Name != "" {
		existing.Name = h.Name
	}
	if len(h.Description) > len(existing.Description) {
		existing.Description = h.Description
	}

	fillLocation(&existing.Location, h.Location)

	existing.Amenities.General = unionStrings(existing.Amenities.General, h.Amenities.General)
	existing.Amenities.Room = unionStrings(existing.Amenities.Room, h.Amenities.Room)

	existing.Images.Rooms = unionImages(existing.Images.Rooms, h.Images.Rooms)
	existing.Images.Site = unionImages(existing.Images.Site, h.Images.Site)
	existing.Images.Amenities = unionImages(existing.Images.Amenities, h.Images.Amenities)

	existing.BookingConditions = unionStrings(existing.BookingConditions, h.BookingConditions)
}

// fillLocation adopts incoming fields only where dst has none; a present
// value is never overwritten, and never replaced by an absent one.
func fillLocation(dst *domain.Location, in domain.Location) {
	if dst.Lat == nil {
		dst.Lat = in.Lat
	}
	if dst.Lng == nil {
		dst.Lng = in.Lng
	}
	if dst.Address == nil {
		dst.Address = in.Address
	}
	if dst.City == nil {
		dst.City = in.City
	}
	if dst.Country == nil {
		dst.Country = in.Country
	}
}

// unionStrings appends the unseen values of in onto existing, preserving
// existing order.
func unionStrings(existing, in []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}
	return existing
}

func unionImages(existing, in []domain.Image) []domain.Image {
	seen := make(map[domain.Image]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}
	return existing
}

// Hotels returns every merged record in first-seen id order.
func (c *Catalog) Hotels() []domain.Hotel {
	return c.Find(nil, nil)
}

// Find filters the merged set. An empty (or nil) filter set is a wildcard
// for that dimension; destination matching is on the decimal string form of
// destination_id, and an absent destination_id never matches a non-empty
// filter. Results come back in first-seen id order.
func (c *Catalog) Find(hotelIDs, destinationIDs map[string]struct{}) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(c.order))
	for _, id := range c.order {
		h := c.byID[id]
		if len(hotelIDs) > 0 {
			if _, ok := hotelIDs[h.ID]; !ok {
				continue
			}
		}
		if len(destinationIDs) > 0 {
			if h.DestinationID == nil {
				continue
			}
			if _, ok := destinationIDs[strconv.FormatInt(*h.DestinationID, 10)]; !ok {
				continue
			}
		}
		out = append(out, *h)
	}
	return out
}

// SetOf builds a filter set, dropping empty tokens so "" means wildcard.
func SetOf(tokens []string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}
