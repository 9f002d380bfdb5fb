// Package store keeps catalog snapshots in a SQLite file.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/theirongolddev/tripcost/internal/catalog"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store reads and writes catalog snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating catalog dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// New wraps an already-open database. The schema is assumed to exist.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored catalog with spec in one transaction.
func (s *Store) Save(spec catalog.Spec) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"route_stops", "routes", "cities", "hotel_tiers", "transports", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err = tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)",
		settingHopDistance, strconv.FormatFloat(spec.HopDistanceKm, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	for i, c := range spec.Cities {
		_, err = tx.Exec("INSERT INTO cities (name, position, food_rate, sight) VALUES (?, ?, ?, ?)",
			c.Name, i, c.FoodRate, c.Sight)
		if err != nil {
			return fmt.Errorf("saving city %q: %w", c.Name, err)
		}
	}

	for i, r := range spec.Routes {
		_, err = tx.Exec("INSERT INTO routes (route_key, position, name) VALUES (?, ?, ?)",
			r.Key, i, r.Name)
		if err != nil {
			return fmt.Errorf("saving route %q: %w", r.Key, err)
		}
		for seq, city := range r.Cities {
			_, err = tx.Exec("INSERT INTO route_stops (route_key, seq, city) VALUES (?, ?, ?)",
				r.Key, seq, city)
			if err != nil {
				return fmt.Errorf("saving stop %d of route %q: %w", seq, r.Key, err)
			}
		}
	}

	for i, h := range spec.Hotels {
		_, err = tx.Exec("INSERT INTO hotel_tiers (tier_key, position, label, rate) VALUES (?, ?, ?, ?)",
			h.Key, i, h.Label, h.Rate)
		if err != nil {
			return fmt.Errorf("saving hotel tier %q: %w", h.Key, err)
		}
	}

	for i, t := range spec.Transports {
		_, err = tx.Exec("INSERT INTO transports (transport_key, position, name, rate) VALUES (?, ?, ?, ?)",
			t.Key, i, t.Name, t.Rate)
		if err != nil {
			return fmt.Errorf("saving transport %q: %w", t.Key, err)
		}
	}

	return tx.Commit()
}

// Load reads the stored catalog. The result is not validated; pass it to
// catalog.Build.
func (s *Store) Load() (catalog.Spec, error) {
	var spec catalog.Spec

	var hop string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingHopDistance).Scan(&hop)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return spec, fmt.Errorf("loading settings: %w", err)
	default:
		spec.HopDistanceKm, err = strconv.ParseFloat(hop, 64)
		if err != nil {
			return spec, fmt.Errorf("parsing %s %q: %w", settingHopDistance, hop, err)
		}
	}

	if spec.Cities, err = s.loadCities(); err != nil {
		return spec, err
	}
	if spec.Routes, err = s.loadRoutes(); err != nil {
		return spec, err
	}
	if spec.Hotels, err = s.loadHotels(); err != nil {
		return spec, err
	}
	if spec.Transports, err = s.loadTransports(); err != nil {
		return spec, err
	}
	return spec, nil
}

func (s *Store) loadCities() ([]catalog.City, error) {
	rows, err := s.db.Query("SELECT name, food_rate, sight FROM cities ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("loading cities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.City
	for rows.Next() {
		var c catalog.City
		if err := rows.Scan(&c.Name, &c.FoodRate, &c.Sight); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) loadRoutes() ([]catalog.Route, error) {
	rows, err := s.db.Query("SELECT route_key, name FROM routes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("loading routes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.Route
	for rows.Next() {
		var r catalog.Route
		if err := rows.Scan(&r.Key, &r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load stops
	stopRows, err := s.db.Query("SELECT route_key, city FROM route_stops ORDER BY route_key, seq")
	if err != nil {
		return nil, fmt.Errorf("loading route stops: %w", err)
	}
	defer func() { _ = stopRows.Close() }()

	routeIdx := make(map[string]int, len(out))
	for i, r := range out {
		routeIdx[r.Key] = i
	}
	for stopRows.Next() {
		var key, city string
		if err := stopRows.Scan(&key, &city); err != nil {
			return nil, err
		}
		if i, ok := routeIdx[key]; ok {
			out[i].Cities = append(out[i].Cities, city)
		}
	}
	return out, stopRows.Err()
}

func (s *Store) loadHotels() ([]catalog.HotelTier, error) {
	rows, err := s.db.Query("SELECT tier_key, label, rate FROM hotel_tiers ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("loading hotel tiers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.HotelTier
	for rows.Next() {
		var h catalog.HotelTier
		if err := rows.Scan(&h.Key, &h.Label, &h.Rate); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) loadTransports() ([]catalog.Transport, error) {
	rows, err := s.db.Query("SELECT transport_key, name, rate FROM transports ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("loading transports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.Transport
	for rows.Next() {
		var t catalog.Transport
		if err := rows.Scan(&t.Key, &t.Name, &t.Rate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// LoadSpec opens an existing snapshot at dbPath and returns its spec.
func LoadSpec(dbPath string) (catalog.Spec, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return catalog.Spec{}, fmt.Errorf("catalog db: %w", err)
	}
	s, err := Open(dbPath)
	if err != nil {
		return catalog.Spec{}, err
	}
	defer func() { _ = s.Close() }()

	return s.Load()
}

// LoadCatalog loads the snapshot at dbPath and validates it.
func LoadCatalog(dbPath string) (*catalog.Catalog, error) {
	spec, err := LoadSpec(dbPath)
	if err != nil {
		return nil, err
	}
	return catalog.Build(spec)
}
