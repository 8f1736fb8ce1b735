package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"
)

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported bank file format")

// ImportConfig controls how tabular bank files are read. Columns are
// fixed: id, english, chinese, type.
type ImportConfig struct {
	SheetName string // xlsx sheet; empty means the first sheet
	StartRow  int    // 1-based row the data starts on
}

// DefaultImportConfig skips a single header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{StartRow: 2}
}

// LoadFile reads a bank from an .xlsx, .csv or .yaml file with the
// default import config and validates it.
func LoadFile(path string) (*Bank, error) {
	return LoadFileWithConfig(path, DefaultImportConfig())
}

// LoadFileWithConfig is LoadFile with an explicit import config.
func LoadFileWithConfig(path string, cfg ImportConfig) (*Bank, error) {
	var (
		items []Item
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		items, err = readExcel(path, cfg)
	case ".csv":
		items, err = readCSV(path, cfg)
	case ".yaml", ".yml":
		items, err = readYAML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	return New(items)
}

func readExcel(path string, cfg ImportConfig) ([]Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows: %w", err)
	}
	return parseRows(rows, cfg.StartRow)
}

func readCSV(path string, cfg ImportConfig) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return parseRows(rows, cfg.StartRow)
}

func readYAML(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Items []Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for i := range doc.Items {
		if c, ok := ParseCategory(string(doc.Items[i].Category)); ok {
			doc.Items[i].Category = c
		}
	}
	return doc.Items, nil
}

// parseRows converts tabular rows into items. Blank rows are skipped;
// malformed rows are collected into a single error.
func parseRows(rows [][]string, startRow int) ([]Item, error) {
	if startRow < 1 {
		startRow = 1
	}

	var (
		items []Item
		errs  []string
	)
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < startRow || blankRow(row) {
			continue
		}
		it, err := parseRow(row)
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		items = append(items, it)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Problems: errs}
	}
	return items, nil
}

func parseRow(row []string) (Item, error) {
	if len(row) < 4 {
		return Item{}, fmt.Errorf("expected 4 columns (id, english, chinese, type), got %d", len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Item{}, fmt.Errorf("invalid id %q", row[0])
	}
	cat, ok := ParseCategory(row[3])
	if !ok {
		return Item{}, fmt.Errorf("unknown category %q", row[3])
	}
	return Item{
		ID:       id,
		Target:   strings.TrimSpace(row[1]),
		Source:   strings.TrimSpace(row[2]),
		Category: cat,
	}, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
