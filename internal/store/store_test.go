package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/tripcost/internal/catalog"

	"github.com/DATA-DOG/go-sqlmock"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoad_RoundTripsDefaultCatalog(t *testing.T) {
	s := openTemp(t)
	want := catalog.DefaultSpec()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v\nwant %+v", got, want)
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	s := openTemp(t)

	if err := s.Save(catalog.DefaultSpec()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	small := catalog.Spec{
		HopDistanceKm: 120,
		Cities: []catalog.City{
			{Name: "Plovdiv", FoodRate: 15, Sight: "Ancient Theatre"},
			{Name: "Varna", FoodRate: 17, Sight: "Sea Garden"},
		},
		Routes:     []catalog.Route{{Key: "bg-coast", Name: "To the coast", Cities: []string{"Plovdiv", "Varna"}}},
		Hotels:     []catalog.HotelTier{{Key: "guesthouse", Label: "Guesthouse", Rate: 35}},
		Transports: []catalog.Transport{{Key: "bus", Name: "Bus", Rate: 0.1}},
	}
	if err := s.Save(small); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, small) {
		t.Errorf("Load() = %+v\nwant %+v", got, small)
	}
}

func TestLoadCatalog_BuildsValidatedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(catalog.DefaultSpec()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = s.Close()

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	r, ok := cat.Route("bg-it")
	if !ok || len(r.Cities) != 4 || r.Cities[3] != "Rome" {
		t.Errorf("bg-it = %+v, ok=%v", r, ok)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Fatal("LoadCatalog on a missing file succeeded")
	}
}

func TestSave_RollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	for i := 0; i < 6; i++ {
		mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("INSERT INTO settings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO cities").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = New(db).Save(catalog.DefaultSpec())
	if err == nil {
		t.Fatal("Save succeeded, want error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoad_PropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(settingHopDistance).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("300"))
	mock.ExpectQuery("SELECT name, food_rate, sight FROM cities").
		WillReturnError(errors.New("no such table: cities"))

	if _, err := New(db).Load(); err == nil {
		t.Fatal("Load succeeded, want error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
