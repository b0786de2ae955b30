// Package refdata loads the LMS reference dataset into the read-only table
// the percentile engine consumes. Loading happens once at process start;
// every invariant the engine relies on (non-empty series, strictly
// increasing ages, positive M and S) is enforced here.
package refdata

import (
	"fmt"
	"os"

	"github.com/leona-app/analytics/common"
	"github.com/leona-app/analytics/model"
	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Series []seriesEntry `yaml:"series"`
}

type seriesEntry struct {
	// Metric is one of: weight | height | head_circumference.
	Metric string `yaml:"metric"`

	// Sex is one of: male | female.
	Sex string `yaml:"sex"`

	Rows []model.LMSRow `yaml:"rows"`
}

// Load reads and validates the dataset file at path.
func Load(path string) (*model.ReferenceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference data: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a ReferenceTable from the raw dataset. Any malformed series
// fails the whole load with common.ErrorCorruptReferenceData: a partially
// usable table would turn a configuration fault into misleading results.
func Parse(data []byte) (*model.ReferenceTable, error) {
	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("reference data: parse yaml: %w", err)
	}

	table := &model.ReferenceTable{Series: map[model.TableKey][]model.LMSRow{}}

	for _, entry := range file.Series {
		metric, err := parseMetric(entry.Metric)
		if err != nil {
			return nil, fmt.Errorf("reference data: %w", err)
		}
		sex, err := parseSex(entry.Sex)
		if err != nil {
			return nil, fmt.Errorf("reference data: %w", err)
		}

		key := model.TableKey{Metric: metric, Sex: sex}
		if _, dup := table.Series[key]; dup {
			return nil, fmt.Errorf("reference data: %w: duplicate series %v/%v",
				common.ErrorCorruptReferenceData, metric, sex)
		}

		if err := validateRows(entry.Rows); err != nil {
			return nil, fmt.Errorf("reference data: series %v/%v: %w", metric, sex, err)
		}

		rows := make([]model.LMSRow, len(entry.Rows))
		copy(rows, entry.Rows)
		table.Series[key] = rows
	}

	if table.IsEmpty() {
		return nil, fmt.Errorf("reference data: %w: no series", common.ErrorCorruptReferenceData)
	}
	return table, nil
}

func validateRows(rows []model.LMSRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty series", common.ErrorCorruptReferenceData)
	}
	for i, row := range rows {
		if row.AgeDays < 0 {
			return fmt.Errorf("%w: row %d has negative age", common.ErrorCorruptReferenceData, i)
		}
		if row.M <= 0 || row.S <= 0 {
			return fmt.Errorf("%w: row %d (age %d) has non-positive M or S",
				common.ErrorCorruptReferenceData, i, row.AgeDays)
		}
		if i > 0 && row.AgeDays <= rows[i-1].AgeDays {
			return fmt.Errorf("%w: ages not strictly increasing at row %d",
				common.ErrorCorruptReferenceData, i)
		}
	}
	return nil
}

func parseMetric(s string) (model.Metric, error) {
	switch s {
	case "weight":
		return model.MetricWeight, nil
	case "height":
		return model.MetricHeight, nil
	case "head_circumference":
		return model.MetricHeadCircumference, nil
	}
	return 0, fmt.Errorf("%w: unknown metric %q", common.ErrorCorruptReferenceData, s)
}

func parseSex(s string) (model.Sex, error) {
	switch s {
	case "male":
		return model.SexMale, nil
	case "female":
		return model.SexFemale, nil
	}
	return 0, fmt.Errorf("%w: unknown sex %q", common.ErrorCorruptReferenceData, s)
}
