// Package trainer builds the model artifact from the raw listings CSV:
// cleaning, outlier removal, one-hot encoding and forest training.
package trainer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Row is one usable listing after basic parsing. PricePerSqft is derived and
// used only for outlier removal.
type Row struct {
	Location     string
	TotalSqft    float64
	Bath         float64
	BHK          int
	Price        float64
	PricePerSqft float64
}

// ParseSqft converts a total_sqft cell to a number. Ranged values like
// "2100 - 2850" average their endpoints; anything else unparsable is
// rejected.
func ParseSqft(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if tokens := strings.Split(raw, "-"); len(tokens) == 2 {
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64)
		if errLo != nil || errHi != nil {
			return 0, false
		}
		return (lo + hi) / 2, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// BHKFromSize extracts the bedroom count from a free-text size field such as
// "2 BHK" or "4 Bedroom".
func BHKFromSize(raw string) (int, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// LoadCSV reads the raw dataset, keeping only the columns the pipeline uses
// and dropping rows with missing or unparsable values. Price is recorded in
// lakhs; price_per_sqft converts to currency units.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"location", "size", "total_sqft", "bath", "price"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("LoadCSV: missing column %q", required)
		}
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		get := func(name string) string {
			i := col[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		location := get("location")
		if location == "" {
			continue
		}
		sqft, ok := ParseSqft(get("total_sqft"))
		if !ok || sqft <= 0 {
			continue
		}
		bhk, ok := BHKFromSize(get("size"))
		if !ok || bhk <= 0 {
			continue
		}
		bath, err := strconv.ParseFloat(get("bath"), 64)
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(get("price"), 64)
		if err != nil {
			continue
		}

		rows = append(rows, Row{
			Location:     location,
			TotalSqft:    sqft,
			Bath:         bath,
			BHK:          bhk,
			Price:        price,
			PricePerSqft: price * 100000 / sqft,
		})
	}
	return rows, nil
}
