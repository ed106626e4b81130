package dashcanvas

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/parser"
)

// DetectFormat picks a dataset format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return FormatAuto, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadDataset reads sample records from a json, yaml or xlsx file.
func LoadDataset(path string, opts LoadOptions) (models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	format := opts.Format
	if format == FormatAuto {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}

	if format == FormatXLSX {
		return loadWorkbook(path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, string(format), err)
	}
	defer f.Close()

	return ReadDataset(f, path, format)
}

// ReadDataset decodes json or yaml records from r. source names r in errors.
func ReadDataset(r io.Reader, source string, format Format) (models.Dataset, error) {
	var (
		ds  models.Dataset
		err error
	)
	switch format {
	case FormatJSON:
		ds, err = parser.DecodeJSON(r)
	case FormatYAML:
		ds, err = parser.DecodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q cannot be streamed", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, NewLoadError(source, string(format), err)
	}
	return ds, nil
}

// loadWorkbook reads the records of one sheet of an xlsx file.
func loadWorkbook(path string, opts LoadOptions) (models.Dataset, error) {
	log := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, string(FormatXLSX), err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.Dataset{}, nil
		}
		sheetName = sheets[0]
	}

	var area *models.CellRange
	if opts.ShouldUsePrintArea() {
		if areas := parser.ExtractPrintAreas(f)[sheetName]; len(areas) > 0 {
			area = &areas[0]
			if len(areas) > 1 {
				log.Warn("sheet has several print areas, using the first",
					zap.String("sheet", sheetName),
					zap.Int("areas", len(areas)))
			}
		}
	}

	ds, err := parser.ExtractRecords(f, sheetName, area, opts.tableParams(), log)
	if err != nil {
		return nil, NewLoadError(path, string(FormatXLSX), fmt.Errorf("sheet %q: %w", sheetName, err))
	}

	log.Debug("workbook dataset loaded",
		zap.String("sheet", sheetName),
		zap.Int("records", len(ds)))
	return ds, nil
}
