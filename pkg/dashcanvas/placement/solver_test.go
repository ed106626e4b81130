package placement

import (
	"testing"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

var chartSize = models.Size{Width: 450, Height: 400}

func place(t *testing.T, n int, size models.Size) []models.ChartInstance {
	t.Helper()
	var charts []models.ChartInstance
	for i := 0; i < n; i++ {
		r := PlaceNewChart(charts, size, DefaultParams())
		charts = append(charts, models.ChartInstance{Position: r})
	}
	return charts
}

func TestPlaceNewChartEmptyCanvas(t *testing.T) {
	r := PlaceNewChart(nil, chartSize, DefaultParams())
	expected := models.Rect{X: 20, Y: 20, Width: 450, Height: 400}
	if r != expected {
		t.Errorf("PlaceNewChart on empty canvas = %+v, expected %+v", r, expected)
	}
}

func TestPlaceNewChartSequence(t *testing.T) {
	charts := place(t, 4, chartSize)

	expected := [][2]float64{{20, 20}, {470, 20}, {20, 440}, {470, 440}}
	for i, c := range charts {
		if c.Position.X != expected[i][0] || c.Position.Y != expected[i][1] {
			t.Errorf("chart %d at (%v, %v), expected (%v, %v)",
				i, c.Position.X, c.Position.Y, expected[i][0], expected[i][1])
		}
	}

	for i := range charts {
		for j := i + 1; j < len(charts); j++ {
			if charts[i].Position.Overlaps(charts[j].Position) {
				t.Errorf("chart %d %+v overlaps chart %d %+v",
					i, charts[i].Position, j, charts[j].Position)
			}
		}
	}
}

func TestFindSlotExhaustion(t *testing.T) {
	var occupied []models.Rect
	for i := 0; i < 4; i++ {
		r, ok := FindSlot(occupied, chartSize, DefaultParams())
		if !ok {
			t.Fatalf("chart %d: expected a free slot", i)
		}
		occupied = append(occupied, r)
	}

	// the fifth chart needs y >= 840, more rows than the attempt cap allows
	r, ok := FindSlot(occupied, chartSize, DefaultParams())
	if ok {
		t.Fatalf("Expected exhaustion, got free slot %+v", r)
	}
	expected := models.Rect{X: 20, Y: 20 + 20*30, Width: 450, Height: 400}
	if r != expected {
		t.Errorf("best-effort candidate = %+v, expected %+v", r, expected)
	}
}

func TestPlaceNewChartManyCharts(t *testing.T) {
	charts := place(t, 25, chartSize)
	if len(charts) != 25 {
		t.Fatalf("Expected 25 placements, got %d", len(charts))
	}
	for i, c := range charts {
		if c.Position.Width != 450 || c.Position.Height != 400 {
			t.Errorf("chart %d has size %vx%v", i, c.Position.Width, c.Position.Height)
		}
	}
}

func TestPlaceNewChartDeterministic(t *testing.T) {
	a := place(t, 8, models.Size{Width: 200, Height: 150})
	b := place(t, 8, models.Size{Width: 200, Height: 150})
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Errorf("placement %d differs: %+v vs %+v", i, a[i].Position, b[i].Position)
		}
	}
}

func TestFindSlotRemovedSpaceIsReused(t *testing.T) {
	occupied := []models.Rect{
		{X: 470, Y: 20, Width: 450, Height: 400},
	}
	r, ok := FindSlot(occupied, chartSize, DefaultParams())
	if !ok || r.X != 20 || r.Y != 20 {
		t.Errorf("FindSlot = (%+v, %v), expected origin slot", r, ok)
	}
}

func TestParamsNormalized(t *testing.T) {
	p := Params{}.normalized()
	if p.Step != DefaultStep || p.MaxX != DefaultMaxX || p.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("normalized zero params = %+v", p)
	}
	if p.OriginX != 0 || p.OriginY != 0 {
		t.Errorf("zero origin must be kept, got (%v, %v)", p.OriginX, p.OriginY)
	}

	p = Params{OriginX: 900, MaxX: 100, Step: 10, MaxAttempts: 1}.normalized()
	if p.MaxX != 900 {
		t.Errorf("MaxX below origin should clamp to origin, got %v", p.MaxX)
	}
}

func TestRectOverlaps(t *testing.T) {
	base := models.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name     string
		other    models.Rect
		expected bool
	}{
		{"identical", base, true},
		{"inside", models.Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching right edge", models.Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching bottom edge", models.Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"partial", models.Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
		{"apart", models.Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"zero size", models.Rect{X: 5, Y: 5}, false},
	}

	for _, tt := range tests {
		if got := base.Overlaps(tt.other); got != tt.expected {
			t.Errorf("%s: Overlaps = %v, expected %v", tt.name, got, tt.expected)
		}
		if got := tt.other.Overlaps(base); got != tt.expected {
			t.Errorf("%s: symmetric Overlaps = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
