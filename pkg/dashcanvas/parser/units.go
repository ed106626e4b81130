// Package parser decodes sample datasets and workbook charts.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUToPixels converts EMU to pixels at 96 DPI.
// Chart frames in drawing parts are positioned in EMU; the canvas works in pixels.
func EMUToPixels(emu int64) float64 {
	return float64(emu / EMUPerPixel)
}
