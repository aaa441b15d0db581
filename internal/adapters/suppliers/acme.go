// Package suppliers holds one adapter per upstream supplier format plus the
// shared HTTP fetch client. Each adapter is a pure translation from that
// supplier's raw record shape into the canonical domain.Hotel.
package suppliers

import (
	"fmt"
	"strings"

	"hotels_merge/internal/domain"
	"hotels_merge/internal/vocab"
)

// Acme uses capitalized keys and publishes facilities as compound-word
// tokens. It carries no image or booking-condition data.
type Acme struct{ Base string }

func (Acme) Name() string { return "acme" }

func (a Acme) Endpoint() string { return a.Base + "/suppliers/acme" }

func (a Acme) Parse(raw map[string]any) (domain.Hotel, error) {
	id := lookupStr(raw, "Id")
	if id == "" {
		return domain.Hotel{}, fmt.Errorf("%w: %s record without Id", domain.ErrMalformedRecord, a.Name())
	}

	// PostalCode is appended only when it is not already part of the address.
	address := strings.TrimSpace(lookupStr(raw, "Address"))
	if pc := lookupStr(raw, "PostalCode"); pc != "" && !strings.Contains(address, pc) {
		address = address + ", " + pc
	}

	h := domain.NewHotel(id)
	h.DestinationID = lookupInt64(raw, "DestinationId")
	h.Name = lookupStr(raw, "Name")
	h.Description = lookupStr(raw, "Description")
	h.Location = domain.Location{
		Lat:     lookupFloat(raw, "Latitude"),
		Lng:     lookupFloat(raw, "Longitude"),
		Address: ptrStr(address),
		City:    ptrStr(lookupStr(raw, "City")),
		Country: ptrStr(lookupStr(raw, "Country")),
	}
	h.Amenities.General, h.Amenities.Room = vocab.Bucket(lookupStrSlice(raw, "Facilities"), vocab.SplitCompound)
	return h, nil
}
