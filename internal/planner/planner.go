// Package planner evaluates trip requests against the static catalog.
package planner

import (
	"math"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/model"
)

// Limits bounds the numeric trip inputs. All bounds are inclusive.
type Limits struct {
	MinDays       int     `json:"min_days"`
	MaxDays       int     `json:"max_days"`
	MinPassengers int     `json:"min_passengers"`
	MaxPassengers int     `json:"max_passengers"`
	MinBudget     float64 `json:"min_budget"`
	MaxBudget     float64 `json:"max_budget"`
}

// DefaultLimits returns the reference input bounds.
func DefaultLimits() Limits {
	return Limits{
		MinDays:       2,
		MaxDays:       14,
		MinPassengers: 1,
		MaxPassengers: 10,
		MinBudget:     500,
		MaxBudget:     20000,
	}
}

// Planner evaluates trips. It holds no mutable state and is safe for
// concurrent use.
type Planner struct {
	cat    *catalog.Catalog
	limits Limits
}

// New returns a planner over cat. A nil cat uses catalog.Default().
func New(cat *catalog.Catalog, limits Limits) *Planner {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Planner{cat: cat, limits: limits}
}

// Catalog returns the catalog the planner evaluates against.
func (p *Planner) Catalog() *catalog.Catalog { return p.cat }

// Limits returns the configured input bounds.
func (p *Planner) Limits() Limits { return p.limits }

// DaysPerCity splits the trip evenly across cities with integer division.
// Remainder days are dropped; every city gets at least one day.
func DaysPerCity(days, cityCount int) int {
	if cityCount <= 0 {
		return 1
	}
	return max(1, days/cityCount)
}

// Validate checks every field of req without computing any cost.
// Lookups are checked before ranges, in request field order.
func (p *Planner) Validate(req model.TripRequest) error {
	if _, ok := p.cat.Route(req.Route); !ok {
		return &LookupError{Field: FieldRoute, Key: req.Route}
	}
	if _, ok := p.cat.Transport(req.Transport); !ok {
		return &LookupError{Field: FieldTransport, Key: req.Transport}
	}
	if _, ok := p.cat.Hotel(req.Hotel); !ok {
		return &LookupError{Field: FieldHotel, Key: req.Hotel}
	}

	l := p.limits
	if req.Days < l.MinDays || req.Days > l.MaxDays {
		return &RangeError{Field: FieldDays, Value: float64(req.Days), Min: float64(l.MinDays), Max: float64(l.MaxDays)}
	}
	if req.Passengers < l.MinPassengers || req.Passengers > l.MaxPassengers {
		return &RangeError{Field: FieldPassengers, Value: float64(req.Passengers), Min: float64(l.MinPassengers), Max: float64(l.MaxPassengers)}
	}
	if math.IsNaN(req.Budget) || req.Budget < l.MinBudget || req.Budget > l.MaxBudget {
		return &RangeError{Field: FieldBudget, Value: req.Budget, Min: l.MinBudget, Max: l.MaxBudget}
	}
	return nil
}

// Evaluate computes the cost breakdown for req. Invalid requests fail
// before any total is computed.
func (p *Planner) Evaluate(req model.TripRequest) (model.TripResult, error) {
	if err := p.Validate(req); err != nil {
		return model.TripResult{}, err
	}

	route, _ := p.cat.Route(req.Route)
	transport, _ := p.cat.Transport(req.Transport)
	hotel, _ := p.cat.Hotel(req.Hotel)

	res := model.TripResult{
		Request:       req,
		RouteName:     route.Name,
		TransportName: transport.Name,
		HotelLabel:    hotel.Label,
		Cities:        make([]model.CityCost, 0, len(route.Cities)),
		DaysPerCity:   DaysPerCity(req.Days, len(route.Cities)),
		HopCount:      route.HopCount(),
	}

	stay := float64(res.DaysPerCity) * float64(req.Passengers)
	for _, name := range route.Cities {
		city, _ := p.cat.City(name)
		cc := model.CityCost{
			City:      city.Name,
			Sight:     city.Sight,
			FoodCost:  city.FoodRate * stay,
			HotelCost: hotel.Rate * stay,
		}
		res.TotalFood += cc.FoodCost
		res.TotalHotel += cc.HotelCost
		res.Cities = append(res.Cities, cc)
	}

	res.DistanceKm = p.cat.HopDistanceKm() * float64(res.HopCount)
	res.TransportCost = transport.Cost(res.DistanceKm, req.Passengers)
	res.GrandTotal = res.TotalFood + res.TotalHotel + res.TransportCost
	res.Sufficient = res.GrandTotal <= req.Budget

	return res, nil
}
