package parser

import (
	"strings"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		for _, ref := range splitReferences(dn.RefersTo) {
			sheetName, area, ok := ParseReference(ref)
			if ok && sheetName != "" {
				result[sheetName] = append(result[sheetName], area)
			}
		}
	}

	return result
}

// splitReferences splits a comma-separated reference list, ignoring commas
// inside quoted sheet names such as 'A,B'!$A$1:$B$2.
func splitReferences(refersTo string) []string {
	var (
		refs   []string
		quoted bool
		start  int
	)
	for i := 0; i < len(refersTo); i++ {
		switch refersTo[i] {
		case '\'':
			quoted = !quoted
		case ',':
			if !quoted {
				refs = append(refs, refersTo[start:i])
				start = i + 1
			}
		}
	}
	return append(refs, refersTo[start:])
}

// ParseReference parses a sheet-qualified range reference.
// Format: 'SheetName'!$A$1:$D$10, SheetName!$A$1:$D$10 or SheetName!$B$2.
func ParseReference(ref string) (sheetName string, area models.CellRange, ok bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", area, false
	}

	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.ReplaceAll(strings.Trim(ref[:idx], "'"), "''", "'")
		rangeStr = ref[idx+1:]
	}

	a := parseRangeToArea(rangeStr)
	if a == nil {
		return sheetName, area, false
	}
	return sheetName, *a, true
}

// parseRangeToArea parses a range string like $A$1:$D$10 (or a single cell) to a CellRange.
func parseRangeToArea(rangeStr string) *models.CellRange {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
