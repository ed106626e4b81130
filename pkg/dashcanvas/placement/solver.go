// Package placement finds positions for new charts on the canvas.
package placement

import (
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

const (
	DefaultOrigin      = 20
	DefaultStep        = 30
	DefaultMaxX        = 800
	DefaultMaxAttempts = 20
)

// Params configures the grid scan.
type Params struct {
	// OriginX and OriginY are the first candidate position.
	OriginX float64 `mapstructure:"origin_x"`
	OriginY float64 `mapstructure:"origin_y"`
	// Step is the grid step on both axes.
	Step float64 `mapstructure:"step"`
	// MaxX is the largest candidate x before the scan wraps to the next row.
	MaxX float64 `mapstructure:"max_x"`
	// MaxAttempts bounds the number of row sweeps. One attempt covers a whole
	// row, so four default-sized charts fit side by side before the cap.
	MaxAttempts int `mapstructure:"max_attempts"`
}

// DefaultParams returns origin (20, 20), step 30, bound 800 and 20 attempts.
func DefaultParams() Params {
	return Params{
		OriginX:     DefaultOrigin,
		OriginY:     DefaultOrigin,
		Step:        DefaultStep,
		MaxX:        DefaultMaxX,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// normalized replaces unusable values so the scan always advances and ends.
// A zero origin is valid and kept.
func (p Params) normalized() Params {
	if p.Step <= 0 {
		p.Step = DefaultStep
	}
	if p.MaxX <= 0 {
		p.MaxX = DefaultMaxX
	}
	if p.MaxX < p.OriginX {
		p.MaxX = p.OriginX
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	return p
}

// PlaceNewChart returns the rectangle for a new chart of the given size.
// It never fails: when no free slot is found the last candidate is returned
// even though it overlaps an existing chart.
func PlaceNewChart(existing []models.ChartInstance, size models.Size, p Params) models.Rect {
	occupied := make([]models.Rect, len(existing))
	for i, c := range existing {
		occupied[i] = c.Position
	}
	r, _ := FindSlot(occupied, size, p)
	return r
}

// FindSlot scans grid positions left to right, then top to bottom, and
// returns the first candidate that overlaps none of occupied.
// Each attempt sweeps one row from OriginX up to MaxX. After MaxAttempts
// rows the last computed candidate is returned with ok set to false.
func FindSlot(occupied []models.Rect, size models.Size, p Params) (r models.Rect, ok bool) {
	p = p.normalized()

	x, y := p.OriginX, p.OriginY
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		for x <= p.MaxX {
			candidate := size.At(x, y)
			if !overlapsAny(candidate, occupied) {
				return candidate, true
			}
			x += p.Step
		}
		x = p.OriginX
		y += p.Step
	}

	return size.At(x, y), false
}

// overlapsAny reports whether r overlaps any rectangle in rects.
func overlapsAny(r models.Rect, rects []models.Rect) bool {
	for _, o := range rects {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
