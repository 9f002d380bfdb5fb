package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/planner"
)

func evaluate(t *testing.T, budget float64) model.TripResult {
	t.Helper()
	p := planner.New(catalog.Default(), planner.DefaultLimits())
	res, err := p.Evaluate(model.TripRequest{
		Route: "bg-de", Transport: "train", Hotel: "standard",
		Days: 6, Passengers: 2, Budget: budget,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return res
}

func TestWritePDF_ProducesDocument(t *testing.T) {
	for _, budget := range []float64{3000, 1000} {
		var buf bytes.Buffer
		err := WritePDF(&buf, evaluate(t, budget), Options{
			Currency:    "BGN",
			GeneratedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("WritePDF(budget=%.0f): %v", budget, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
		}
		if buf.Len() < 500 {
			t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
		}
	}
}

func TestAsciiArrows(t *testing.T) {
	if got := asciiArrows("Bulgaria → Germany"); got != "Bulgaria -> Germany" {
		t.Errorf("asciiArrows = %q", got)
	}
}
