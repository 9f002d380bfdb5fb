// Package catalog holds the static route, city, hotel and transport tables.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultHopDistanceKm is the distance charged for every hop between two
// consecutive cities of a route. It does not reflect real geography.
const DefaultHopDistanceKm = 300

// City is one stop a route can pass through.
type City struct {
	Name     string  `json:"name" toml:"-"`
	FoodRate float64 `json:"food_rate" toml:"food"` // per person per day
	Sight    string  `json:"sight" toml:"sight"`
}

// Route is a named, ordered sequence of city names.
type Route struct {
	Key    string   `json:"key" toml:"-"`
	Name   string   `json:"name" toml:"name"`
	Cities []string `json:"cities" toml:"cities"`
}

// HopCount returns the number of legs between consecutive cities.
func (r Route) HopCount() int {
	if len(r.Cities) == 0 {
		return 0
	}
	return len(r.Cities) - 1
}

// HotelTier is a nightly price per person applied to every city of a trip.
type HotelTier struct {
	Key   string  `json:"key" toml:"-"`
	Label string  `json:"label" toml:"label"`
	Rate  float64 `json:"rate" toml:"rate"`
}

// Transport is a pricing record for inter-city travel.
type Transport struct {
	Key  string  `json:"key" toml:"-"`
	Name string  `json:"name" toml:"name"`
	Rate float64 `json:"rate" toml:"rate"` // per person per km
}

// Cost returns the travel cost for the given distance and passenger count.
func (t Transport) Cost(distanceKm float64, passengers int) float64 {
	return t.Rate * distanceKm * float64(passengers)
}

// Spec is the mutable description a Catalog is built from.
// Slice order is preserved for display.
type Spec struct {
	HopDistanceKm float64
	Cities        []City
	Routes        []Route
	Hotels        []HotelTier
	Transports    []Transport
}

// Catalog is the validated, read-only union of all tables.
type Catalog struct {
	hopDistance float64

	cities     []City
	routes     []Route
	hotels     []HotelTier
	transports []Transport

	cityIdx      map[string]int
	routeIdx     map[string]int
	hotelIdx     map[string]int
	transportIdx map[string]int
}

// ErrInvalidCatalog is wrapped by every error returned from Build.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Build validates spec and returns an immutable Catalog.
func Build(spec Spec) (*Catalog, error) {
	c := &Catalog{
		hopDistance:  spec.HopDistanceKm,
		cityIdx:      make(map[string]int, len(spec.Cities)),
		routeIdx:     make(map[string]int, len(spec.Routes)),
		hotelIdx:     make(map[string]int, len(spec.Hotels)),
		transportIdx: make(map[string]int, len(spec.Transports)),
	}
	if c.hopDistance == 0 {
		c.hopDistance = DefaultHopDistanceKm
	}
	if c.hopDistance < 0 {
		return nil, fmt.Errorf("%w: hop distance %.2f must be positive", ErrInvalidCatalog, c.hopDistance)
	}

	for _, city := range spec.Cities {
		if city.Name == "" {
			return nil, fmt.Errorf("%w: city with empty name", ErrInvalidCatalog)
		}
		if city.FoodRate <= 0 {
			return nil, fmt.Errorf("%w: city %q has non-positive food rate", ErrInvalidCatalog, city.Name)
		}
		if _, dup := c.cityIdx[city.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate city %q", ErrInvalidCatalog, city.Name)
		}
		c.cityIdx[city.Name] = len(c.cities)
		c.cities = append(c.cities, city)
	}

	for _, r := range spec.Routes {
		if r.Key == "" {
			return nil, fmt.Errorf("%w: route with empty key", ErrInvalidCatalog)
		}
		if len(r.Cities) < 2 {
			return nil, fmt.Errorf("%w: route %q needs at least 2 cities, has %d", ErrInvalidCatalog, r.Key, len(r.Cities))
		}
		for _, name := range r.Cities {
			if _, ok := c.cityIdx[name]; !ok {
				return nil, fmt.Errorf("%w: route %q references unknown city %q", ErrInvalidCatalog, r.Key, name)
			}
		}
		if _, dup := c.routeIdx[r.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate route %q", ErrInvalidCatalog, r.Key)
		}
		if r.Name == "" {
			r.Name = r.Key
		}
		r.Cities = append([]string(nil), r.Cities...)
		c.routeIdx[r.Key] = len(c.routes)
		c.routes = append(c.routes, r)
	}

	for _, h := range spec.Hotels {
		if h.Key == "" {
			return nil, fmt.Errorf("%w: hotel tier with empty key", ErrInvalidCatalog)
		}
		if h.Rate <= 0 {
			return nil, fmt.Errorf("%w: hotel tier %q has non-positive rate", ErrInvalidCatalog, h.Key)
		}
		if _, dup := c.hotelIdx[h.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate hotel tier %q", ErrInvalidCatalog, h.Key)
		}
		if h.Label == "" {
			h.Label = h.Key
		}
		c.hotelIdx[h.Key] = len(c.hotels)
		c.hotels = append(c.hotels, h)
	}

	for _, t := range spec.Transports {
		if t.Key == "" {
			return nil, fmt.Errorf("%w: transport with empty key", ErrInvalidCatalog)
		}
		if t.Rate <= 0 {
			return nil, fmt.Errorf("%w: transport %q has non-positive rate", ErrInvalidCatalog, t.Key)
		}
		if _, dup := c.transportIdx[t.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate transport %q", ErrInvalidCatalog, t.Key)
		}
		if t.Name == "" {
			t.Name = t.Key
		}
		c.transportIdx[t.Key] = len(c.transports)
		c.transports = append(c.transports, t)
	}

	return c, nil
}

// MustBuild is like Build but panics on an invalid spec.
// Only meant for compiled-in tables.
func MustBuild(spec Spec) *Catalog {
	c, err := Build(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// HopDistanceKm returns the fixed distance charged per hop.
func (c *Catalog) HopDistanceKm() float64 { return c.hopDistance }

// Route looks up a route by key.
func (c *Catalog) Route(key string) (Route, bool) {
	i, ok := c.routeIdx[key]
	if !ok {
		return Route{}, false
	}
	r := c.routes[i]
	r.Cities = append([]string(nil), r.Cities...)
	return r, true
}

// City looks up a city by name.
func (c *Catalog) City(name string) (City, bool) {
	i, ok := c.cityIdx[name]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

// Hotel looks up a hotel tier by key.
func (c *Catalog) Hotel(key string) (HotelTier, bool) {
	i, ok := c.hotelIdx[key]
	if !ok {
		return HotelTier{}, false
	}
	return c.hotels[i], true
}

// Transport looks up a transport variant by key.
func (c *Catalog) Transport(key string) (Transport, bool) {
	i, ok := c.transportIdx[key]
	if !ok {
		return Transport{}, false
	}
	return c.transports[i], true
}

// Routes returns all routes in catalog order.
func (c *Catalog) Routes() []Route {
	out := make([]Route, len(c.routes))
	for i, r := range c.routes {
		r.Cities = append([]string(nil), r.Cities...)
		out[i] = r
	}
	return out
}

// Cities returns all cities in catalog order.
func (c *Catalog) Cities() []City {
	return append([]City(nil), c.cities...)
}

// Hotels returns all hotel tiers in catalog order.
func (c *Catalog) Hotels() []HotelTier {
	return append([]HotelTier(nil), c.hotels...)
}

// Transports returns all transport variants in catalog order.
func (c *Catalog) Transports() []Transport {
	return append([]Transport(nil), c.transports...)
}

// Spec returns a copy of the catalog contents that can be edited and rebuilt.
func (c *Catalog) Spec() Spec {
	return Spec{
		HopDistanceKm: c.hopDistance,
		Cities:        c.Cities(),
		Routes:        c.Routes(),
		Hotels:        c.Hotels(),
		Transports:    c.Transports(),
	}
}

// RouteKeys returns the route keys sorted alphabetically.
func (c *Catalog) RouteKeys() []string {
	keys := make([]string, 0, len(c.routes))
	for _, r := range c.routes {
		keys = append(keys, r.Key)
	}
	sort.Strings(keys)
	return keys
}
