package assess

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/marek-kar/attrisk/pkg/model"
)

var ErrUnsupportedFormat = errors.New("unsupported attributes format")

// LoadAttributes reads raw attribute rows from a .csv, .json, .yaml or .yml
// file. Cell values stay unparsed; ParseAttributes applies the defaults.
func LoadAttributes(path string) ([]model.RawAttributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attributes: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return DecodeAttributesCSV(bytes.NewReader(data))
	case ".json":
		return DecodeAttributesJSON(data)
	case ".yaml", ".yml":
		return DecodeAttributesYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func DecodeAttributesCSV(r io.Reader) ([]model.RawAttributes, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []model.RawAttributes
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		cells := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				cells[normalizeKey(col)] = rec[i]
			}
		}
		rows = append(rows, rawFromCells(cells))
	}
	return rows, nil
}

func DecodeAttributesJSON(data []byte) ([]model.RawAttributes, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var items []map[string]interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode attributes json: %w", err)
	}
	return rawFromItems(items), nil
}

func DecodeAttributesYAML(data []byte) ([]model.RawAttributes, error) {
	var items []map[string]interface{}
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode attributes yaml: %w", err)
	}
	return rawFromItems(items), nil
}

func rawFromItems(items []map[string]interface{}) []model.RawAttributes {
	rows := make([]model.RawAttributes, 0, len(items))
	for _, item := range items {
		cells := make(map[string]string, len(item))
		for k, v := range item {
			cells[normalizeKey(k)] = cellString(v)
		}
		rows = append(rows, rawFromCells(cells))
	}
	return rows
}

func rawFromCells(cells map[string]string) model.RawAttributes {
	return model.RawAttributes{
		Age:               cells["age"],
		Department:        cells["department"],
		JobSatisfaction:   cells["jobsatisfaction"],
		WorkLifeBalance:   cells["worklifebalance"],
		YearsAtCompany:    cells["yearsatcompany"],
		MonthlySalary:     cells["monthlysalary"],
		Overtime:          cells["overtime"],
		PerformanceRating: cells["performancerating"],
	}
}

// normalizeKey folds snake_case and camelCase headers onto one key.
func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(k)
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return overtimeSentinel
		}
		return "no"
	default:
		return fmt.Sprint(t)
	}
}
