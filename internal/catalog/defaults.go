package catalog

// DefaultSpec returns the compiled-in reference tables.
func DefaultSpec() Spec {
	return Spec{
		HopDistanceKm: DefaultHopDistanceKm,
		Cities: []City{
			{Name: "Sofia", FoodRate: 20, Sight: "Alexander Nevsky Cathedral"},
			{Name: "Belgrade", FoodRate: 22, Sight: "Kalemegdan"},
			{Name: "Vienna", FoodRate: 30, Sight: "Schönbrunn Palace"},
			{Name: "Munich", FoodRate: 28, Sight: "Marienplatz"},
			{Name: "Skopje", FoodRate: 18, Sight: "Stone Bridge"},
			{Name: "Tirana", FoodRate: 19, Sight: "Skanderbeg Square"},
			{Name: "Rome", FoodRate: 35, Sight: "Colosseum"},
		},
		Routes: []Route{
			{Key: "bg-de", Name: "Bulgaria → Germany", Cities: []string{"Sofia", "Belgrade", "Vienna", "Munich"}},
			{Key: "bg-it", Name: "Bulgaria → Italy", Cities: []string{"Sofia", "Skopje", "Tirana", "Rome"}},
		},
		Hotels: []HotelTier{
			{Key: "budget", Label: "Budget", Rate: 50},
			{Key: "standard", Label: "Standard", Rate: 80},
			{Key: "luxury", Label: "Luxury", Rate: 120},
		},
		Transports: []Transport{
			{Key: "car", Name: "Car", Rate: 0.25},
			{Key: "train", Name: "Train", Rate: 0.18},
			{Key: "plane", Name: "Plane", Rate: 0.45},
		},
	}
}

var defaultCatalog = MustBuild(DefaultSpec())

// Default returns the reference catalog. It is built once per process.
func Default() *Catalog { return defaultCatalog }

// Merge overlays over onto base. An entry whose key (or city name) already
// exists only replaces the fields it sets; zero fields keep the base value.
// New entries are appended as given. A zero HopDistanceKm in over keeps the
// base distance.
func Merge(base, over Spec) Spec {
	out := Spec{HopDistanceKm: base.HopDistanceKm}
	if over.HopDistanceKm != 0 {
		out.HopDistanceKm = over.HopDistanceKm
	}

	out.Cities = overlay(base.Cities, over.Cities,
		func(c City) string { return c.Name },
		func(dst *City, src City) {
			if src.FoodRate != 0 {
				dst.FoodRate = src.FoodRate
			}
			if src.Sight != "" {
				dst.Sight = src.Sight
			}
		})
	out.Routes = overlay(base.Routes, over.Routes,
		func(r Route) string { return r.Key },
		func(dst *Route, src Route) {
			if src.Name != "" {
				dst.Name = src.Name
			}
			if len(src.Cities) > 0 {
				dst.Cities = append([]string(nil), src.Cities...)
			}
		})
	out.Hotels = overlay(base.Hotels, over.Hotels,
		func(h HotelTier) string { return h.Key },
		func(dst *HotelTier, src HotelTier) {
			if src.Label != "" {
				dst.Label = src.Label
			}
			if src.Rate != 0 {
				dst.Rate = src.Rate
			}
		})
	out.Transports = overlay(base.Transports, over.Transports,
		func(t Transport) string { return t.Key },
		func(dst *Transport, src Transport) {
			if src.Name != "" {
				dst.Name = src.Name
			}
			if src.Rate != 0 {
				dst.Rate = src.Rate
			}
		})

	return out
}

func overlay[T any](base, over []T, key func(T) string, apply func(*T, T)) []T {
	out := append([]T(nil), base...)
	for _, o := range over {
		found := false
		for i := range out {
			if key(out[i]) == key(o) {
				apply(&out[i], o)
				found = true
				break
			}
		}
		if !found {
			out = append(out, o)
		}
	}
	return out
}
