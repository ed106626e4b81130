package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// HeaderSeparator splits header cells into nested record keys,
// so a column headed "address.city" becomes {"address": {"city": ...}}.
const HeaderSeparator = "."

// ExtractRecords reads the table of a sheet as sample records.
// The first row of the detected table is the header; every later row with
// at least one value becomes a record keyed by header, in column order.
// Blank cells are nil. If area is non-nil, cells outside it are ignored.
// A dotted header that clashes with a plain header of one of its prefixes
// (e.g. "a" and "a.b") is kept as a literal key and reported to logger.
func ExtractRecords(f *excelize.File, sheetName string, area *models.CellRange, params TableDetectionParams, logger *zap.Logger) (models.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if area != nil {
		rows = clipRows(rows, *area)
	}

	bounds := detectBounds(rows, params)
	if bounds == nil {
		return models.Dataset{}, nil
	}

	headers := headerKeys(rows[bounds.R1-1], bounds.C1, bounds.C2)
	nested, clashes := nestedHeaders(headers)
	for _, h := range clashes {
		logger.Warn("header clashes with another column, keeping it as a flat key",
			zap.String("sheet", sheetName),
			zap.String("header", h))
	}

	result := models.Dataset{}
	for rowNum := bounds.R1 + 1; rowNum <= bounds.R2; rowNum++ {
		row := rows[rowNum-1]
		rec := models.Record{}
		hasData := false

		for colNum := bounds.C1; colNum <= bounds.C2; colNum++ {
			key := headers[colNum-bounds.C1]
			if key == "" {
				continue
			}

			var value any
			if colNum-1 < len(row) && row[colNum-1] != "" {
				value = parseValue(row[colNum-1])
				hasData = true
			}
			if nested[colNum-bounds.C1] {
				setPath(&rec, key, value)
			} else {
				rec.Set(key, value)
			}
		}

		if hasData {
			result = append(result, rec)
		}
	}

	return result, nil
}

// HeaderAt returns the header text above the given 1-based column of the
// sheet's table, or "" if the column is outside the table.
func HeaderAt(f *excelize.File, sheetName string, col int, params TableDetectionParams) (string, error) {
	bounds, err := DetectTable(f, sheetName, params)
	if err != nil || bounds == nil {
		return "", err
	}
	if col < bounds.C1 || col > bounds.C2 {
		return "", nil
	}
	cell, err := excelize.CoordinatesToCellName(col, bounds.R1)
	if err != nil {
		return "", err
	}
	value, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// clipRows blanks every cell outside area.
func clipRows(rows [][]string, area models.CellRange) [][]string {
	clipped := make([][]string, len(rows))
	for rowIdx, row := range rows {
		out := make([]string, len(row))
		for colIdx, cell := range row {
			if area.Contains(rowIdx+1, colIdx+1) {
				out[colIdx] = cell
			}
		}
		clipped[rowIdx] = out
	}
	return clipped
}

// headerKeys returns the trimmed header cells for columns c1..c2 (1-based).
func headerKeys(row []string, c1, c2 int) []string {
	keys := make([]string, c2-c1+1)
	for col := c1; col <= c2; col++ {
		if col-1 < len(row) {
			keys[col-c1] = strings.TrimSpace(row[col-1])
		}
	}
	return keys
}

// nestedHeaders reports which headers can be stored as nested records.
// A dotted header is flat when a proper prefix of it is itself a header,
// since that column holds a scalar where the nested record would go.
// Such headers are returned as clashes.
func nestedHeaders(headers []string) (nested []bool, clashes []string) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if h != "" {
			present[h] = true
		}
	}

	nested = make([]bool, len(headers))
	for i, h := range headers {
		if h == "" || strings.HasPrefix(h, HeaderSeparator) || strings.HasSuffix(h, HeaderSeparator) {
			continue
		}
		nested[i] = true
		for j := 0; j < len(h); j++ {
			if h[j:j+1] == HeaderSeparator && present[h[:j]] {
				nested[i] = false
				clashes = append(clashes, h)
				break
			}
		}
	}
	return nested, clashes
}

// setPath stores value under a dotted header, creating nested records.
func setPath(rec *models.Record, path string, value any) {
	head, rest, nested := strings.Cut(path, HeaderSeparator)
	if !nested || head == "" || rest == "" {
		rec.Set(path, value)
		return
	}

	var child models.Record
	if existing, ok := rec.Get(head); ok {
		child, _ = existing.(models.Record)
	}
	if child == nil {
		child = models.Record{}
	}
	setPath(&child, rest, value)
	rec.Set(head, child)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, bool for TRUE/FALSE,
// or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	return s
}
