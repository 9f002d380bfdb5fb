// Package config loads and saves the tripcost TOML configuration.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/planner"

	"github.com/BurntSushi/toml"
)

// Config holds all tripcost configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Limits     LimitsConfig     `toml:"limits"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Catalog    CatalogOverrides `toml:"catalog"`
}

// GeneralConfig holds the defaults pre-filled in every front end.
type GeneralConfig struct {
	Currency          string  `toml:"currency"`
	DefaultRoute      string  `toml:"default_route"`
	DefaultTransport  string  `toml:"default_transport"`
	DefaultHotel      string  `toml:"default_hotel"`
	DefaultDays       int     `toml:"default_days"`
	DefaultPassengers int     `toml:"default_passengers"`
	DefaultBudget     float64 `toml:"default_budget"`
}

// LimitsConfig bounds the numeric trip inputs.
type LimitsConfig struct {
	MinDays       int     `toml:"min_days"`
	MaxDays       int     `toml:"max_days"`
	MinPassengers int     `toml:"min_passengers"`
	MaxPassengers int     `toml:"max_passengers"`
	MinBudget     float64 `toml:"min_budget"`
	MaxBudget     float64 `toml:"max_budget"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
	LogFormat      string   `toml:"log_format,omitempty"` // text or json
}

// CatalogOverrides adds to or replaces entries of the built-in catalog.
type CatalogOverrides struct {
	HopDistanceKm float64                      `toml:"hop_distance_km,omitempty"`
	Cities        map[string]catalog.City      `toml:"cities,omitempty"`
	Routes        map[string]catalog.Route     `toml:"routes,omitempty"`
	Hotels        map[string]catalog.HotelTier `toml:"hotels,omitempty"`
	Transport     map[string]catalog.Transport `toml:"transport,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	l := planner.DefaultLimits()
	return Config{
		General: GeneralConfig{
			Currency:          "BGN",
			DefaultRoute:      "bg-de",
			DefaultTransport:  "train",
			DefaultHotel:      "standard",
			DefaultDays:       6,
			DefaultPassengers: 2,
			DefaultBudget:     3000,
		},
		Limits: LimitsConfig{
			MinDays:       l.MinDays,
			MaxDays:       l.MaxDays,
			MinPassengers: l.MinPassengers,
			MaxPassengers: l.MaxPassengers,
			MinBudget:     l.MinBudget,
			MaxBudget:     l.MaxBudget,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8088",
			LogFormat: "text",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripcost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config location
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Limits.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid [limits] in %s: %w", path, err)
	}

	return applyEnv(cfg), nil
}

// Validate rejects empty or inverted ranges.
func (l LimitsConfig) Validate() error {
	switch {
	case l.MinDays < 1 || l.MinDays > l.MaxDays:
		return fmt.Errorf("days range [%d, %d] is empty or starts below 1", l.MinDays, l.MaxDays)
	case l.MinPassengers < 1 || l.MinPassengers > l.MaxPassengers:
		return fmt.Errorf("passengers range [%d, %d] is empty or starts below 1", l.MinPassengers, l.MaxPassengers)
	case math.IsNaN(l.MinBudget) || math.IsNaN(l.MaxBudget) || l.MinBudget < 0 || l.MinBudget > l.MaxBudget:
		return fmt.Errorf("budget range [%g, %g] is empty or negative", l.MinBudget, l.MaxBudget)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("TRIPCOST_CURRENCY"); v != "" {
		cfg.General.Currency = v
	}
	if v := os.Getenv("TRIPCOST_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return cfg
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// PlannerLimits converts the configured limits for the planner.
func (c Config) PlannerLimits() planner.Limits {
	return planner.Limits{
		MinDays:       c.Limits.MinDays,
		MaxDays:       c.Limits.MaxDays,
		MinPassengers: c.Limits.MinPassengers,
		MaxPassengers: c.Limits.MaxPassengers,
		MinBudget:     c.Limits.MinBudget,
		MaxBudget:     c.Limits.MaxBudget,
	}
}

// DefaultRequest returns the trip request pre-filled from [general].
func (c Config) DefaultRequest() model.TripRequest {
	g := c.General
	return model.TripRequest{
		Route:      g.DefaultRoute,
		Transport:  g.DefaultTransport,
		Hotel:      g.DefaultHotel,
		Days:       g.DefaultDays,
		Passengers: g.DefaultPassengers,
		Budget:     g.DefaultBudget,
	}
}

// CatalogSpec returns the overrides as a catalog spec. Map keys become the
// entry keys; entries are sorted by key for a stable catalog order.
func (o CatalogOverrides) CatalogSpec() catalog.Spec {
	spec := catalog.Spec{HopDistanceKm: o.HopDistanceKm}

	for _, name := range sortedKeys(o.Cities) {
		c := o.Cities[name]
		c.Name = name
		spec.Cities = append(spec.Cities, c)
	}
	for _, key := range sortedKeys(o.Routes) {
		r := o.Routes[key]
		r.Key = key
		spec.Routes = append(spec.Routes, r)
	}
	for _, key := range sortedKeys(o.Hotels) {
		h := o.Hotels[key]
		h.Key = key
		spec.Hotels = append(spec.Hotels, h)
	}
	for _, key := range sortedKeys(o.Transport) {
		t := o.Transport[key]
		t.Key = key
		spec.Transports = append(spec.Transports, t)
	}

	return spec
}

// BuildCatalog merges the overrides onto base and validates the result.
func (c Config) BuildCatalog(base catalog.Spec) (*catalog.Catalog, error) {
	cat, err := catalog.Build(catalog.Merge(base, c.Catalog.CatalogSpec()))
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s: %w", Path(), err)
	}
	return cat, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
