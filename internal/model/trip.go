// Package model defines domain types for trip requests and cost results.
package model

// TripRequest is one set of planner inputs. It is never persisted.
type TripRequest struct {
	Route      string  `json:"route"`
	Transport  string  `json:"transport"`
	Hotel      string  `json:"hotel"`
	Days       int     `json:"days"`
	Passengers int     `json:"passengers"`
	Budget     float64 `json:"budget"`
}

// CityCost is the itemized cost of the stay in one city.
type CityCost struct {
	City      string  `json:"city"`
	Sight     string  `json:"sight"`
	FoodCost  float64 `json:"food_cost"`
	HotelCost float64 `json:"hotel_cost"`
}

// Total returns food plus hotel for the city.
func (c CityCost) Total() float64 { return c.FoodCost + c.HotelCost }

// TripResult holds the full cost breakdown derived from a TripRequest.
type TripResult struct {
	Request TripRequest `json:"request"`

	RouteName     string `json:"route_name"`
	TransportName string `json:"transport_name"`
	HotelLabel    string `json:"hotel_label"`

	Cities      []CityCost `json:"cities"`
	DaysPerCity int        `json:"days_per_city"`
	HopCount    int        `json:"hop_count"`
	DistanceKm  float64    `json:"distance_km"`

	TotalFood     float64 `json:"total_food"`
	TotalHotel    float64 `json:"total_hotel"`
	TransportCost float64 `json:"transport_cost"`
	GrandTotal    float64 `json:"grand_total"`

	Sufficient bool `json:"sufficient"`
}

// SeriesPoint is one labeled value of a chart series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series labels, in display order.
const (
	SeriesTransport = "Transport"
	SeriesFood      = "Food"
	SeriesHotel     = "Hotel"
)

// CityNames returns the route's cities in travel order.
func (r TripResult) CityNames() []string {
	names := make([]string, len(r.Cities))
	for i, c := range r.Cities {
		names[i] = c.City
	}
	return names
}

// Series returns the {transport, food, hotel} totals for bar charts.
func (r TripResult) Series() []SeriesPoint {
	return []SeriesPoint{
		{Label: SeriesTransport, Value: r.TransportCost},
		{Label: SeriesFood, Value: r.TotalFood},
		{Label: SeriesHotel, Value: r.TotalHotel},
	}
}

// Remaining returns budget minus grand total. Negative means over budget.
func (r TripResult) Remaining() float64 {
	return r.Request.Budget - r.GrandTotal
}

// BudgetUsed returns grand total as a fraction of the budget.
func (r TripResult) BudgetUsed() float64 {
	if r.Request.Budget <= 0 {
		return 0
	}
	return r.GrandTotal / r.Request.Budget
}
