package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"goanova/domain/anova"
	"goanova/domain/core"

	"github.com/xuri/excelize/v2"
)

// GroupedReader reads grouped observations from Excel and CSV files. The
// sheet must carry a header row; the group column and the value column are
// located by name ("group"/"value", case-insensitive) and fall back to the
// first two columns.
type GroupedReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewGroupedReader creates a reader that handles both Excel and CSV files
func NewGroupedReader(filePath string) *GroupedReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &GroupedReader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a Dataset, preserving group first-appearance order
func (r *GroupedReader) Read() (anova.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return anova.Dataset{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return anova.Dataset{}, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return anova.Dataset{}, err
	}

	return parseRows(rows)
}

func (r *GroupedReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (r *GroupedReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	return rows, nil
}

// parseRows turns a header row plus data rows into a Dataset
func parseRows(rows [][]string) (anova.Dataset, error) {
	if len(rows) < 2 {
		return anova.Dataset{}, fmt.Errorf("file must have a header row and at least one data row")
	}

	groupCol, valueCol := locateColumns(rows[0])

	obs := make([]anova.Observation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) <= groupCol || len(row) <= valueCol {
			continue // short or trailing-blank row
		}
		label := strings.TrimSpace(row[groupCol])
		raw := strings.TrimSpace(row[valueCol])
		if label == "" && raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return anova.Dataset{}, fmt.Errorf("row %d: cannot parse value %q: %w", i+2, raw, err)
		}
		obs = append(obs, anova.Observation{Group: core.GroupLabel(label), Value: value})
	}

	if len(obs) == 0 {
		return anova.Dataset{}, fmt.Errorf("file contains no observations")
	}
	return anova.NewDatasetFromObservations(obs), nil
}

func locateColumns(header []string) (groupCol, valueCol int) {
	groupCol, valueCol = 0, 1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "group", "condition", "factor":
			groupCol = i
		case "value", "observation", "measurement":
			valueCol = i
		}
	}
	return groupCol, valueCol
}
