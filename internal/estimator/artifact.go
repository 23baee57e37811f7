package estimator

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// NumFixedColumns is the count of fixed numeric feature names at the head of
// data_columns; everything after them is a one-hot location indicator.
const NumFixedColumns = 3

// Artifact bundles the trained model with its ordered feature columns. It is
// constructed once at startup and passed into handlers; nothing mutates it.
type Artifact struct {
	Columns []string
	Model   Estimator
}

type columnsFile struct {
	DataColumns []string `json:"data_columns"`
}

// LoadColumns reads the ordered feature-column list from a columns.json file.
func LoadColumns(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadColumns: %w", err)
	}
	var cf columnsFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("LoadColumns: %w", err)
	}
	if len(cf.DataColumns) < NumFixedColumns+1 {
		return nil, fmt.Errorf("LoadColumns: expected at least %d columns, got %d", NumFixedColumns+1, len(cf.DataColumns))
	}
	return cf.DataColumns, nil
}

// Load reads the model and column files written by the trainer.
func Load(modelPath, columnsPath string) (*Artifact, error) {
	cols, err := LoadColumns(columnsPath)
	if err != nil {
		return nil, err
	}
	forest, err := LoadForest(modelPath)
	if err != nil {
		return nil, err
	}
	if forest.NumFeatures != len(cols) {
		return nil, fmt.Errorf("Load: model expects %d features but columns file has %d", forest.NumFeatures, len(cols))
	}
	return &Artifact{Columns: cols, Model: forest}, nil
}

// Locations returns the one-hot location column names.
func (a *Artifact) Locations() []string {
	return a.Columns[NumFixedColumns:]
}

// FeatureVector builds the model input: numeric fields written into their
// named slots, then a single 1 in the slot whose column name matches the
// location case-insensitively. An unmatched location leaves every location
// slot at 0, which is the training set's "other" bucket.
func (a *Artifact) FeatureVector(totalSqft float64, bath, bhk, propertyAge int, location string) []float64 {
	features := make([]float64, len(a.Columns))
	a.setColumn(features, "total_sqft", totalSqft)
	a.setColumn(features, "bath", float64(bath))
	a.setColumn(features, "bhk", float64(bhk))
	a.setColumn(features, "property_age", float64(propertyAge))

	location = strings.TrimSpace(location)
	if location != "" {
		for i, col := range a.Columns {
			if strings.EqualFold(col, location) {
				features[i] = 1
				break
			}
		}
	}
	return features
}

func (a *Artifact) setColumn(features []float64, name string, value float64) {
	for i, col := range a.Columns {
		if col == name {
			features[i] = value
			return
		}
	}
}

// AgeFactor is the linear depreciation multiplier: 1.0 at age 0 falling to
// 0.6 at 20 years, flat beyond, negative ages clamped to 0.
func AgeFactor(age int) float64 {
	if age < 0 {
		age = 0
	}
	if age > 20 {
		age = 20
	}
	return 1 - (float64(age)/20)*0.4
}
