package app_test

import (
	"reflect"
	"testing"

	"hotels_merge/internal/app"
	"hotels_merge/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestMerge_NameLaterNonEmptyWins(t *testing.T) {
	cat := app.Merge([]domain.Hotel{
		{ID: "h1", Name: "First Name"},
		{ID: "h1", Name: "Second Name"},
		{ID: "h1", Name: ""},
	})
	got := cat.Hotels()
	if got[0].Name != "Second Name" {
		t.Fatalf("name = %q, want later non-empty value", got[0].Name)
	}
}

func TestMerge_LongerDescriptionWins_OrderIndependent(t *testing.T) {
	short := domain.Hotel{ID: "h1", Description: "short"}
	long := domain.Hotel{ID: "h1", Description: "much longer text"}

	a := app.Merge([]domain.Hotel{short, long}).Hotels()
	b := app.Merge([]domain.Hotel{long, short}).Hotels()
	if a[0].Description != "much longer text" || b[0].Description != "much longer text" {
		t.Fatalf("longer description must win both ways: %q / %q", a[0].Description, b[0].Description)
	}

	// tie keeps the existing value
	c := app.Merge([]domain.Hotel{
		{ID: "h1", Description: "aaaaa"},
		{ID: "h1", Description: "bbbbb"},
	}).Hotels()
	if c[0].Description != "aaaaa" {
		t.Fatalf("tie must keep existing, got %q", c[0].Description)
	}
}

func TestMerge_LocationFirstPresentWinsPerField(t *testing.T) {
	cat := app.Merge([]domain.Hotel{
		{ID: "h1", Location: domain.Location{City: nil, Address: ptr("8 Sentosa Gateway")}},
		{ID: "h1", Location: domain.Location{City: ptr("Paris"), Address: ptr("another address")}},
		{ID: "h1", Location: domain.Location{City: ptr("Berlin"), Lat: ptr(1.5)}},
	})
	loc := cat.Hotels()[0].Location
	if loc.City == nil || *loc.City != "Paris" {
		t.Fatalf("city = %v, want first present value Paris", loc.City)
	}
	if *loc.Address != "8 Sentosa Gateway" {
		t.Fatalf("address overwritten: %v", *loc.Address)
	}
	if loc.Lat == nil || *loc.Lat != 1.5 {
		t.Fatalf("lat not filled: %v", loc.Lat)
	}
	if loc.Country != nil {
		t.Fatalf("country appeared from nowhere: %v", loc.Country)
	}
}

func TestMerge_UnionsHaveNoDuplicates(t *testing.T) {
	img := domain.Image{Link: "http://img/1.jpg", Description: "front"}
	imgOtherCaption := domain.Image{Link: "http://img/1.jpg", Description: "entrance"}
	cat := app.Merge([]domain.Hotel{
		{
			ID:                "h1",
			Amenities:         domain.Amenities{General: []string{"wifi", "breakfast"}, Room: []string{"tv"}},
			Images:            domain.Images{Site: []domain.Image{img}},
			BookingConditions: []string{"No pets."},
		},
		{
			ID:                "h1",
			Amenities:         domain.Amenities{General: []string{"breakfast", "childcare"}, Room: []string{"tv", "tv"}},
			Images:            domain.Images{Site: []domain.Image{img, imgOtherCaption}},
			BookingConditions: []string{"No pets.", "Check-in from 14:00."},
		},
	})
	h := cat.Hotels()[0]
	if want := []string{"wifi", "breakfast", "childcare"}; !reflect.DeepEqual(h.Amenities.General, want) {
		t.Fatalf("general = %v, want %v", h.Amenities.General, want)
	}
	if want := []string{"tv"}; !reflect.DeepEqual(h.Amenities.Room, want) {
		t.Fatalf("room = %v, want %v", h.Amenities.Room, want)
	}
	// link-equal but caption-different entries are distinct; exact duplicates collapse
	if want := []domain.Image{img, imgOtherCaption}; !reflect.DeepEqual(h.Images.Site, want) {
		t.Fatalf("site = %v, want %v", h.Images.Site, want)
	}
	if want := []string{"No pets.", "Check-in from 14:00."}; !reflect.DeepEqual(h.BookingConditions, want) {
		t.Fatalf("booking_conditions = %v, want %v", h.BookingConditions, want)
	}
}

func TestMerge_DestinationAndIDNeverAltered(t *testing.T) {
	cat := app.Merge([]domain.Hotel{
		{ID: "h1", DestinationID: ptr(int64(5432))},
		{ID: "h1", DestinationID: ptr(int64(1122))},
	})
	h := cat.Hotels()[0]
	if h.ID != "h1" || h.DestinationID == nil || *h.DestinationID != 5432 {
		t.Fatalf("first registration must win: %+v", h)
	}
}

func TestMerge_RemergeIsFixedPoint(t *testing.T) {
	in := []domain.Hotel{
		{ID: "h1", Name: "A", Description: "desc", Amenities: domain.Amenities{General: []string{"wifi"}, Room: []string{}}},
		{ID: "h1", Name: "B", Amenities: domain.Amenities{General: []string{"breakfast"}, Room: []string{"tv"}}},
		{ID: "h2", Name: "C"},
	}
	once := app.Merge(in).Hotels()
	twice := app.Merge(once).Hotels()
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merged output must be a fixed point:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFind_Filtering(t *testing.T) {
	cat := app.Merge([]domain.Hotel{
		{ID: "iJhz", DestinationID: ptr(int64(5432))},
		{ID: "SjyX", DestinationID: ptr(int64(5432))},
		{ID: "f8c9", DestinationID: ptr(int64(1122))},
		{ID: "noDest"},
	})

	// wildcard both dimensions, first-seen order
	all := cat.Find(nil, nil)
	if len(all) != 4 || all[0].ID != "iJhz" || all[3].ID != "noDest" {
		t.Fatalf("wildcard find: %+v", all)
	}

	// destination filter only
	got := cat.Find(nil, app.SetOf([]string{"5432"}))
	if len(got) != 2 || got[0].ID != "iJhz" || got[1].ID != "SjyX" {
		t.Fatalf("destination filter: %+v", got)
	}

	// both filters must match
	got = cat.Find(app.SetOf([]string{"f8c9", "SjyX"}), app.SetOf([]string{"1122"}))
	if len(got) != 1 || got[0].ID != "f8c9" {
		t.Fatalf("combined filter: %+v", got)
	}

	// absent destination never matches a non-empty destination filter
	got = cat.Find(nil, app.SetOf([]string{"9999"}))
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

// End-to-end field semantics for one id across three supplier records.
func TestMerge_ThreeSupplierScenario(t *testing.T) {
	acme := domain.NewHotel("iJhz")
	acme.Name = "Beach Villas Singapore"
	acme.Description = "short"
	acme.Amenities.General = []string{"outdoor pool", "breakfast"}

	paperflies := domain.NewHotel("iJhz")
	paperflies.Name = "Beach Villas Singapore"
	paperflies.Description = "a longer and more complete description of the hotel"
	paperflies.Location.Address = ptr("8 Sentosa Gateway")
	paperflies.Amenities.General = []string{"outdoor pool", "breakfast"}
	paperflies.Amenities.Room = []string{"tv", "aircon"}

	patagonia := domain.NewHotel("iJhz")
	patagonia.Location.Lat = ptr(1.264751)
	patagonia.Location.Lng = ptr(103.824006)
	patagonia.Amenities.Room = []string{"tv", "coffee machine"}

	h := app.Merge([]domain.Hotel{acme, paperflies, patagonia}).Hotels()[0]

	if h.Description != "a longer and more complete description of the hotel" {
		t.Errorf("description = %q", h.Description)
	}
	if h.Location.Address == nil || *h.Location.Address != "8 Sentosa Gateway" {
		t.Errorf("address = %v", h.Location.Address)
	}
	if h.Location.Lat == nil || *h.Location.Lat != 1.264751 || h.Location.Lng == nil || *h.Location.Lng != 103.824006 {
		t.Errorf("coords = %v/%v", h.Location.Lat, h.Location.Lng)
	}
	if want := []string{"outdoor pool", "breakfast"}; !reflect.DeepEqual(h.Amenities.General, want) {
		t.Errorf("general = %v, want %v", h.Amenities.General, want)
	}
	if want := []string{"tv", "aircon", "coffee machine"}; !reflect.DeepEqual(h.Amenities.Room, want) {
		t.Errorf("room = %v, want %v", h.Amenities.Room, want)
	}
}
