package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/marek-kar/attrisk/pkg/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	ErrDuplicateID       = errors.New("duplicate employee id")
	ErrInvalidRecord     = errors.New("invalid employee record")
)

// CSVHeader is the column order used for roster CSV input and export.
var CSVHeader = []string{"id", "name", "department", "role", "tenure", "satisfaction", "risk_level", "last_review"}

// Load reads and validates a roster from a .json, .yaml, .yml or .csv file.
func Load(path string) ([]model.EmployeeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var records []model.EmployeeRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = DecodeJSON(data)
	case ".yaml", ".yml":
		records, err = DecodeYAML(data)
	case ".csv":
		records, err = DecodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func DecodeJSON(data []byte) ([]model.EmployeeRecord, error) {
	var records []model.EmployeeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode roster json: %w", err)
	}
	return normalize(records), nil
}

func DecodeYAML(data []byte) ([]model.EmployeeRecord, error) {
	var records []model.EmployeeRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode roster yaml: %w", err)
	}
	return normalize(records), nil
}

func DecodeCSV(r io.Reader) ([]model.EmployeeRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range CSVHeader {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("csv header missing column %q", want)
		}
	}

	var records []model.EmployeeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		rec, err := recordFromRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordFromRow(row []string, cols map[string]int) (model.EmployeeRecord, error) {
	cell := func(name string) string { return strings.TrimSpace(row[cols[name]]) }

	id, err := strconv.Atoi(cell("id"))
	if err != nil {
		return model.EmployeeRecord{}, fmt.Errorf("id: %w", err)
	}
	satisfaction, err := strconv.Atoi(cell("satisfaction"))
	if err != nil {
		return model.EmployeeRecord{}, fmt.Errorf("satisfaction: %w", err)
	}
	dept, err := model.ParseDepartment(cell("department"))
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	risk, err := model.ParseRiskLevel(cell("risk_level"))
	if err != nil {
		return model.EmployeeRecord{}, err
	}
	review, err := model.ParseDate(cell("last_review"))
	if err != nil {
		return model.EmployeeRecord{}, err
	}

	return model.EmployeeRecord{
		ID:                 id,
		Name:               cell("name"),
		Department:         dept,
		Role:               cell("role"),
		Tenure:             cell("tenure"),
		SatisfactionRating: satisfaction,
		RiskLevel:          risk,
		LastReviewDate:     review,
	}, nil
}

// normalize canonicalizes enum spellings ("engineering" -> "Engineering").
// Values that do not parse are left for Validate to report.
func normalize(records []model.EmployeeRecord) []model.EmployeeRecord {
	for i := range records {
		if d, err := model.ParseDepartment(string(records[i].Department)); err == nil {
			records[i].Department = d
		}
		if r, err := model.ParseRiskLevel(string(records[i].RiskLevel)); err == nil {
			records[i].RiskLevel = r
		}
	}
	return records
}

// Validate checks that ids are unique, every enum and rating is in range and
// every record has a review date.
func Validate(records []model.EmployeeRecord) error {
	var errs []error
	seen := make(map[int]bool, len(records))

	for _, rec := range records {
		if seen[rec.ID] {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateID, rec.ID))
		}
		seen[rec.ID] = true

		if !rec.Department.Valid() {
			errs = append(errs, fmt.Errorf("%w: id %d: unknown department %q", ErrInvalidRecord, rec.ID, rec.Department))
		}
		if !rec.RiskLevel.Valid() {
			errs = append(errs, fmt.Errorf("%w: id %d: unknown risk level %q", ErrInvalidRecord, rec.ID, rec.RiskLevel))
		}
		if rec.SatisfactionRating < 1 || rec.SatisfactionRating > MaxStars {
			errs = append(errs, fmt.Errorf("%w: id %d: satisfaction %d out of range 1-%d", ErrInvalidRecord, rec.ID, rec.SatisfactionRating, MaxStars))
		}
		if rec.LastReviewDate.IsZero() {
			errs = append(errs, fmt.Errorf("%w: id %d: missing last review date", ErrInvalidRecord, rec.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("roster had %d errors; first: %w", len(errs), errs[0])
	}
	return nil
}
