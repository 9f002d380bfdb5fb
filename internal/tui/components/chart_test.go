package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestBarChart_ConsistentWidth(t *testing.T) {
	theme.SetActive("terminal")
	defer theme.SetActive("flexoki-dark")

	out := BarChart([]Bar{
		{Label: "Transport", Value: 324, Color: theme.Active.Blue},
		{Label: "Food", Value: 200, Color: theme.Active.Orange},
		{Label: "Hotel", Value: 640, Color: theme.Active.Magenta},
	}, 40, 8)

	lines := strings.Split(out, "\n")
	// 640 -> tick 200, ceiling 800, 4 intervals x 2 rows, plus axis and labels.
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
	if !strings.Contains(lines[len(lines)-1], "Hotel") {
		t.Errorf("label line missing Hotel: %q", lines[len(lines)-1])
	}
	if !strings.Contains(lines[0], "800") {
		t.Errorf("top tick = %q, want 800", lines[0])
	}
}

func TestBarChart_Empty(t *testing.T) {
	if got := BarChart(nil, 40, 8); got != "" {
		t.Errorf("BarChart(nil) = %q", got)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{640, 100},
		{1164, 200},
		{50, 10},
		{0, 1},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := map[float64]string{
		800:     "800",
		2000:    "2k",
		2500:    "2.5k",
		1500000: "1.5M",
		0.5:     "0.50",
	}
	for v, want := range tests {
		if got := formatChartLabel(v); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestColorForPct(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	tests := []struct {
		pct  float64
		want string
	}{
		{0.39, string(th.Green)},
		{0.75, string(th.Yellow)},
		{0.95, string(th.Orange)},
		{1.0, string(th.Orange)},
		{1.16, string(th.Red)},
	}
	for _, tt := range tests {
		if got := ColorForPct(tt.pct); got != tt.want {
			t.Errorf("ColorForPct(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestBudgetBar_ShowsRealPercentage(t *testing.T) {
	out := BudgetBar("Budget", 1.164, 8, 20)
	if !strings.Contains(out, "116%") {
		t.Errorf("BudgetBar = %q, want 116%%", out)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	for _, tab := range Tabs {
		if got, want := TabVisualWidth(tab, true), len(tab.Name)+2; got != want {
			t.Errorf("active %s width = %d, want %d", tab.Name, got, want)
		}
		if got, want := TabVisualWidth(tab, false), len(tab.Name)+4; got != want {
			t.Errorf("inactive %s width = %d, want %d", tab.Name, got, want)
		}
	}
}
