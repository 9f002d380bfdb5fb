package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/model"
)

func baseRequest() model.TripRequest {
	return model.TripRequest{
		Route:      "bg-de",
		Transport:  "train",
		Hotel:      "standard",
		Days:       6,
		Passengers: 2,
		Budget:     3000,
	}
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(catalog.Default(), DefaultLimits())
}

func TestEvaluate_EndToEndExample(t *testing.T) {
	p := newTestPlanner(t)

	res, err := p.Evaluate(baseRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if res.DaysPerCity != 1 {
		t.Errorf("DaysPerCity = %d, want 1", res.DaysPerCity)
	}
	if res.TotalFood != 200 {
		t.Errorf("TotalFood = %.2f, want 200.00", res.TotalFood)
	}
	if res.TotalHotel != 640 {
		t.Errorf("TotalHotel = %.2f, want 640.00", res.TotalHotel)
	}
	if res.DistanceKm != 900 {
		t.Errorf("DistanceKm = %.0f, want 900", res.DistanceKm)
	}
	if res.TransportCost != 324 {
		t.Errorf("TransportCost = %.2f, want 324.00", res.TransportCost)
	}
	if res.GrandTotal != 1164 {
		t.Errorf("GrandTotal = %.2f, want 1164.00", res.GrandTotal)
	}
	if !res.Sufficient {
		t.Error("Sufficient = false with budget 3000, want true")
	}

	req := baseRequest()
	req.Budget = 1000
	res, err = p.Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Sufficient {
		t.Error("Sufficient = true with budget 1000, want false")
	}
}

func TestEvaluate_PerCityBreakdown(t *testing.T) {
	p := newTestPlanner(t)

	res, err := p.Evaluate(baseRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	want := []model.CityCost{
		{City: "Sofia", Sight: "Alexander Nevsky Cathedral", FoodCost: 40, HotelCost: 160},
		{City: "Belgrade", Sight: "Kalemegdan", FoodCost: 44, HotelCost: 160},
		{City: "Vienna", Sight: "Schönbrunn Palace", FoodCost: 60, HotelCost: 160},
		{City: "Munich", Sight: "Marienplatz", FoodCost: 56, HotelCost: 160},
	}
	if len(res.Cities) != len(want) {
		t.Fatalf("cities = %d, want %d", len(res.Cities), len(want))
	}
	for i, w := range want {
		if res.Cities[i] != w {
			t.Errorf("city[%d] = %+v, want %+v", i, res.Cities[i], w)
		}
	}
	if res.RouteName != "Bulgaria → Germany" || res.TransportName != "Train" || res.HotelLabel != "Standard" {
		t.Errorf("labels = %q/%q/%q", res.RouteName, res.TransportName, res.HotelLabel)
	}
}

func TestEvaluate_GrandTotalIsExactSum(t *testing.T) {
	p := newTestPlanner(t)
	limits := p.Limits()

	for _, route := range []string{"bg-de", "bg-it"} {
		for _, tr := range []string{"car", "train", "plane"} {
			for _, hotel := range []string{"budget", "standard", "luxury"} {
				for days := limits.MinDays; days <= limits.MaxDays; days++ {
					for pax := limits.MinPassengers; pax <= limits.MaxPassengers; pax += 3 {
						req := model.TripRequest{Route: route, Transport: tr, Hotel: hotel, Days: days, Passengers: pax, Budget: 5000}
						res, err := p.Evaluate(req)
						if err != nil {
							t.Fatalf("Evaluate(%+v): %v", req, err)
						}
						if res.GrandTotal != res.TotalFood+res.TotalHotel+res.TransportCost {
							t.Fatalf("%+v: grand total %v != %v + %v + %v",
								req, res.GrandTotal, res.TotalFood, res.TotalHotel, res.TransportCost)
						}
						if res.Sufficient != (res.GrandTotal <= req.Budget) {
							t.Fatalf("%+v: Sufficient = %v with total %v", req, res.Sufficient, res.GrandTotal)
						}
					}
				}
			}
		}
	}
}

func TestDaysPerCity(t *testing.T) {
	tests := []struct {
		days, cities, want int
	}{
		{2, 4, 1},  // floor is zero, clamped to one
		{3, 4, 1},  // clamped
		{6, 4, 1},  // remainder 2 dropped
		{7, 4, 1},  // remainder 3 dropped
		{8, 4, 2},  // exact
		{11, 4, 2}, // remainder 3 dropped
		{14, 4, 3},
		{14, 2, 7},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := DaysPerCity(tt.days, tt.cities); got != tt.want {
			t.Errorf("DaysPerCity(%d, %d) = %d, want %d", tt.days, tt.cities, got, tt.want)
		}
	}
}

func TestDaysPerCity_StableWithinDivisionBucket(t *testing.T) {
	p := newTestPlanner(t)

	var first model.TripResult
	for days := 8; days <= 11; days++ {
		req := baseRequest()
		req.Days = days
		req.Budget = 20000
		res, err := p.Evaluate(req)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if days == 8 {
			first = res
			continue
		}
		if res.DaysPerCity != first.DaysPerCity || res.GrandTotal != first.GrandTotal {
			t.Errorf("days=%d: DaysPerCity=%d total=%.2f, want %d / %.2f",
				days, res.DaysPerCity, res.GrandTotal, first.DaysPerCity, first.GrandTotal)
		}
	}
}

func TestEvaluate_BudgetBoundaryIsSufficient(t *testing.T) {
	p := newTestPlanner(t)

	req := baseRequest()
	req.Budget = 1164
	res, err := p.Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.GrandTotal != req.Budget {
		t.Fatalf("GrandTotal = %.2f, want %.2f", res.GrandTotal, req.Budget)
	}
	if !res.Sufficient {
		t.Error("grand total == budget must be sufficient")
	}
	if res.Remaining() != 0 {
		t.Errorf("Remaining = %.2f, want 0", res.Remaining())
	}

	req.Budget = 1163.99
	res, _ = p.Evaluate(req)
	if res.Sufficient {
		t.Error("budget one cent short reported sufficient")
	}
}

func TestEvaluate_TransportScalesLinearly(t *testing.T) {
	p := newTestPlanner(t)

	req := baseRequest()
	req.Budget = 20000
	one, _ := p.Evaluate(req)
	req.Passengers *= 2
	two, _ := p.Evaluate(req)
	if two.TransportCost != 2*one.TransportCost {
		t.Errorf("doubling passengers: %v, want %v", two.TransportCost, 2*one.TransportCost)
	}

	// 3 hops vs 6 hops
	spec := catalog.DefaultSpec()
	spec.Routes = append(spec.Routes, catalog.Route{
		Key:    "long",
		Cities: []string{"Sofia", "Belgrade", "Vienna", "Munich", "Vienna", "Belgrade", "Sofia"},
	})
	long := New(catalog.MustBuild(spec), DefaultLimits())

	short, _ := long.Evaluate(baseRequest())
	req = baseRequest()
	req.Route = "long"
	doubled, err := long.Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if doubled.HopCount != 2*short.HopCount {
		t.Fatalf("HopCount = %d, want %d", doubled.HopCount, 2*short.HopCount)
	}
	if doubled.TransportCost != 2*short.TransportCost {
		t.Errorf("doubling hops: %v, want %v", doubled.TransportCost, 2*short.TransportCost)
	}
}

func TestEvaluate_ReferenceTransportCost(t *testing.T) {
	p := newTestPlanner(t)

	tests := []struct {
		transport string
		want      float64
	}{
		{"car", 450},
		{"train", 324},
		{"plane", 810},
	}
	for _, tt := range tests {
		req := baseRequest()
		req.Transport = tt.transport
		res, err := p.Evaluate(req)
		if err != nil {
			t.Fatalf("Evaluate(%s): %v", tt.transport, err)
		}
		if math.Abs(res.TransportCost-tt.want) > 1e-9 {
			t.Errorf("%s: TransportCost = %.2f, want %.2f", tt.transport, res.TransportCost, tt.want)
		}
	}
}

func TestEvaluate_ValidationErrors(t *testing.T) {
	p := newTestPlanner(t)

	tests := []struct {
		name      string
		mutate    func(*model.TripRequest)
		field     string
		wantRange bool
	}{
		{"unknown route", func(r *model.TripRequest) { r.Route = "bg-fr" }, FieldRoute, false},
		{"unknown transport", func(r *model.TripRequest) { r.Transport = "boat" }, FieldTransport, false},
		{"unknown hotel", func(r *model.TripRequest) { r.Hotel = "hostel" }, FieldHotel, false},
		{"days too few", func(r *model.TripRequest) { r.Days = 1 }, FieldDays, true},
		{"days too many", func(r *model.TripRequest) { r.Days = 15 }, FieldDays, true},
		{"no passengers", func(r *model.TripRequest) { r.Passengers = 0 }, FieldPassengers, true},
		{"too many passengers", func(r *model.TripRequest) { r.Passengers = 11 }, FieldPassengers, true},
		{"budget too low", func(r *model.TripRequest) { r.Budget = 499 }, FieldBudget, true},
		{"budget too high", func(r *model.TripRequest) { r.Budget = 20000.5 }, FieldBudget, true},
		{"budget NaN", func(r *model.TripRequest) { r.Budget = math.NaN() }, FieldBudget, true},
		{"budget infinite", func(r *model.TripRequest) { r.Budget = math.Inf(1) }, FieldBudget, true},
		{"lookup wins over range", func(r *model.TripRequest) { r.Hotel = "x"; r.Days = 0 }, FieldHotel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			res, err := p.Evaluate(req)
			if err == nil {
				t.Fatal("Evaluate succeeded, want error")
			}
			if got := ErrorField(err); got != tt.field {
				t.Errorf("ErrorField = %q, want %q", got, tt.field)
			}
			if IsRange(err) != tt.wantRange {
				t.Errorf("IsRange = %v, want %v", IsRange(err), tt.wantRange)
			}
			if IsLookup(err) == tt.wantRange {
				t.Errorf("IsLookup = %v, want %v", IsLookup(err), !tt.wantRange)
			}
			if res.GrandTotal != 0 || res.Cities != nil {
				t.Errorf("partial result returned with error: %+v", res)
			}
		})
	}
}

func TestEvaluate_BoundsAreInclusive(t *testing.T) {
	p := newTestPlanner(t)
	l := p.Limits()

	for _, req := range []model.TripRequest{
		{Route: "bg-it", Transport: "car", Hotel: "budget", Days: l.MinDays, Passengers: l.MinPassengers, Budget: l.MinBudget},
		{Route: "bg-it", Transport: "plane", Hotel: "luxury", Days: l.MaxDays, Passengers: l.MaxPassengers, Budget: l.MaxBudget},
	} {
		if _, err := p.Evaluate(req); err != nil {
			t.Errorf("Evaluate(%+v): %v", req, err)
		}
	}
}

func TestLookupError_Message(t *testing.T) {
	err := error(&LookupError{Field: FieldRoute, Key: "nowhere"})
	if err.Error() != `unknown route "nowhere"` {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := errors.Join(errors.New("planning"), err)
	if !IsLookup(wrapped) {
		t.Error("IsLookup should see through wrapping")
	}

	re := &RangeError{Field: FieldBudget, Value: 12.5, Min: 500, Max: 20000}
	if re.Error() != "budget 12.50 out of range [500, 20000]" {
		t.Errorf("Error() = %q", re.Error())
	}
}

func TestNew_NilCatalogUsesDefault(t *testing.T) {
	p := New(nil, DefaultLimits())
	if p.Catalog() != catalog.Default() {
		t.Error("nil catalog should fall back to catalog.Default()")
	}
}
