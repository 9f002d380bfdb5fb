package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog_RoutesReferenceKnownCities(t *testing.T) {
	c := Default()
	for _, r := range c.Routes() {
		if len(r.Cities) < 2 {
			t.Errorf("route %q has %d cities, want >= 2", r.Key, len(r.Cities))
		}
		for _, name := range r.Cities {
			if _, ok := c.City(name); !ok {
				t.Errorf("route %q references unknown city %q", r.Key, name)
			}
		}
	}
}

func TestDefaultCatalog_ReferenceRates(t *testing.T) {
	c := Default()

	wantTransport := map[string]float64{"car": 0.25, "train": 0.18, "plane": 0.45}
	for key, rate := range wantTransport {
		tr, ok := c.Transport(key)
		if !ok {
			t.Fatalf("transport %q missing", key)
		}
		if tr.Rate != rate {
			t.Errorf("transport %q rate = %.2f, want %.2f", key, tr.Rate, rate)
		}
	}

	wantHotel := map[string]float64{"budget": 50, "standard": 80, "luxury": 120}
	for key, rate := range wantHotel {
		h, ok := c.Hotel(key)
		if !ok {
			t.Fatalf("hotel tier %q missing", key)
		}
		if h.Rate != rate {
			t.Errorf("hotel %q rate = %.0f, want %.0f", key, h.Rate, rate)
		}
	}

	if c.HopDistanceKm() != 300 {
		t.Errorf("HopDistanceKm = %.0f, want 300", c.HopDistanceKm())
	}
}

func TestTransportCost(t *testing.T) {
	train := Transport{Key: "train", Name: "Train", Rate: 0.18}
	if got := train.Cost(900, 2); got != 324 {
		t.Fatalf("Cost(900, 2) = %v, want 324", got)
	}
	if got := train.Cost(900, 4); got != 2*train.Cost(900, 2) {
		t.Errorf("doubling passengers: got %v, want %v", got, 2*train.Cost(900, 2))
	}
	if got := train.Cost(1800, 2); got != 2*train.Cost(900, 2) {
		t.Errorf("doubling distance: got %v, want %v", got, 2*train.Cost(900, 2))
	}
}

func TestBuild_Rejects(t *testing.T) {
	base := DefaultSpec()

	tests := []struct {
		name   string
		mutate func(*Spec)
		want   string
	}{
		{
			name: "unknown city in route",
			mutate: func(s *Spec) {
				s.Routes = append(s.Routes, Route{Key: "x", Cities: []string{"Sofia", "Atlantis"}})
			},
			want: "unknown city",
		},
		{
			name: "single-stop route",
			mutate: func(s *Spec) {
				s.Routes = append(s.Routes, Route{Key: "solo", Cities: []string{"Sofia"}})
			},
			want: "at least 2",
		},
		{
			name:   "zero hotel rate",
			mutate: func(s *Spec) { s.Hotels[0].Rate = 0 },
			want:   "non-positive rate",
		},
		{
			name:   "negative transport rate",
			mutate: func(s *Spec) { s.Transports[1].Rate = -1 },
			want:   "non-positive rate",
		},
		{
			name:   "duplicate city",
			mutate: func(s *Spec) { s.Cities = append(s.Cities, s.Cities[0]) },
			want:   "duplicate city",
		},
		{
			name:   "negative hop distance",
			mutate: func(s *Spec) { s.HopDistanceKm = -5 },
			want:   "hop distance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Merge(base, Spec{})
			tt.mutate(&spec)
			_, err := Build(spec)
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("error %v does not wrap ErrInvalidCatalog", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()

	r, _ := c.Route("bg-de")
	r.Cities[0] = "Mutated"
	again, _ := c.Route("bg-de")
	if again.Cities[0] != "Sofia" {
		t.Fatalf("Route returned shared slice: first city = %q", again.Cities[0])
	}

	routes := c.Routes()
	routes[0].Cities[1] = "Mutated"
	if c.Routes()[0].Cities[1] == "Mutated" {
		t.Fatal("Routes returned shared slice")
	}

	hotels := c.Hotels()
	hotels[0].Rate = 1
	if h, _ := c.Hotel(hotels[0].Key); h.Rate == 1 {
		t.Fatal("Hotels returned shared slice")
	}
}

func TestMerge_ReplacesAndAppends(t *testing.T) {
	over := Spec{
		HopDistanceKm: 250,
		Cities: []City{
			{Name: "Sofia", FoodRate: 21, Sight: "Boyana Church"},
			{Name: "Athens", FoodRate: 27, Sight: "Acropolis"},
		},
		Routes: []Route{
			{Key: "bg-gr", Name: "Bulgaria → Greece", Cities: []string{"Sofia", "Athens"}},
		},
		Transports: []Transport{{Key: "bus", Name: "Bus", Rate: 0.12}},
	}

	c, err := Build(Merge(DefaultSpec(), over))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sofia, _ := c.City("Sofia")
	if sofia.FoodRate != 21 || sofia.Sight != "Boyana Church" {
		t.Errorf("Sofia = %+v, want overridden record", sofia)
	}
	if len(c.Cities()) != len(DefaultSpec().Cities)+1 {
		t.Errorf("cities = %d, want %d", len(c.Cities()), len(DefaultSpec().Cities)+1)
	}
	if _, ok := c.Route("bg-gr"); !ok {
		t.Error("merged route bg-gr missing")
	}
	if _, ok := c.Route("bg-de"); !ok {
		t.Error("base route bg-de lost in merge")
	}
	if _, ok := c.Transport("bus"); !ok {
		t.Error("merged transport bus missing")
	}
	if c.HopDistanceKm() != 250 {
		t.Errorf("HopDistanceKm = %.0f, want 250", c.HopDistanceKm())
	}

	// base spec untouched
	if DefaultSpec().Cities[0].FoodRate != 20 {
		t.Error("Merge mutated its base")
	}
}

func TestMerge_PartialOverrideKeepsBaseFields(t *testing.T) {
	over := Spec{
		Cities:     []City{{Name: "Sofia", Sight: "Boyana Church"}},
		Hotels:     []HotelTier{{Key: "luxury", Rate: 150}},
		Transports: []Transport{{Key: "train", Name: "Night train"}},
		Routes:     []Route{{Key: "bg-it", Name: "Balkans to Rome"}},
	}

	c, err := Build(Merge(DefaultSpec(), over))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sofia, _ := c.City("Sofia")
	if sofia.FoodRate != 20 || sofia.Sight != "Boyana Church" {
		t.Errorf("Sofia = %+v, want food 20 kept and sight replaced", sofia)
	}
	lux, _ := c.Hotel("luxury")
	if lux.Label != "Luxury" || lux.Rate != 150 {
		t.Errorf("luxury = %+v", lux)
	}
	train, _ := c.Transport("train")
	if train.Name != "Night train" || train.Rate != 0.18 {
		t.Errorf("train = %+v", train)
	}
	route, _ := c.Route("bg-it")
	if route.Name != "Balkans to Rome" || len(route.Cities) != 4 || route.Cities[3] != "Rome" {
		t.Errorf("bg-it = %+v", route)
	}
}

func TestMerge_NewEntryMustBeComplete(t *testing.T) {
	over := Spec{Cities: []City{{Name: "Athens", Sight: "Acropolis"}}}
	if _, err := Build(Merge(DefaultSpec(), over)); err == nil {
		t.Fatal("Build accepted a new city without a food rate")
	}
}

func TestBuild_OrderPreserved(t *testing.T) {
	c := Default()
	got := []string{}
	for _, tr := range c.Transports() {
		got = append(got, tr.Key)
	}
	if strings.Join(got, ",") != "car,train,plane" {
		t.Errorf("transport order = %v, want [car train plane]", got)
	}
	if keys := c.RouteKeys(); strings.Join(keys, ",") != "bg-de,bg-it" {
		t.Errorf("RouteKeys = %v", keys)
	}
}
