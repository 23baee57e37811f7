package trainer

import (
	"math"
	"sort"
	"strings"
)

// Options are the empirically tuned cleaning thresholds. They have no stated
// rationale in the original dataset work, so they stay configurable.
type Options struct {
	// Locations with at most this many listings collapse into "other".
	RareLocationMax int
	// Listings below this sqft-per-bedroom ratio are dropped.
	MinSqftPerBHK float64
	// Width of the per-location price-per-sqft band, in standard deviations.
	PPSStdBand float64
	// Minimum sample count for a bedroom group to anchor anomaly removal.
	BHKGroupMin int
}

// DefaultOptions mirrors the thresholds the dataset was originally tuned with.
func DefaultOptions() Options {
	return Options{
		RareLocationMax: 10,
		MinSqftPerBHK:   300,
		PPSStdBand:      1.0,
		BHKGroupMin:     5,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// std is the population standard deviation.
func std(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// BucketRareLocations strips location names and collapses those with at most
// maxCount listings into the "other" bucket.
func BucketRareLocations(rows []Row, maxCount int) []Row {
	counts := map[string]int{}
	for i := range rows {
		rows[i].Location = strings.TrimSpace(rows[i].Location)
		counts[rows[i].Location]++
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	for i := range out {
		if counts[out[i].Location] <= maxCount {
			out[i].Location = "other"
		}
	}
	return out
}

// FilterMinSqftPerBHK drops listings with implausibly little area per
// bedroom.
func FilterMinSqftPerBHK(rows []Row, minRatio float64) []Row {
	out := rows[:0:0]
	for _, r := range rows {
		if r.TotalSqft/float64(r.BHK) >= minRatio {
			out = append(out, r)
		}
	}
	return out
}

// RemovePPSOutliers keeps, per location, only rows whose price-per-sqft lies
// in (mean − band·std, mean + band·std].
func RemovePPSOutliers(rows []Row, band float64) []Row {
	byLocation := map[string][]float64{}
	for _, r := range rows {
		byLocation[r.Location] = append(byLocation[r.Location], r.PricePerSqft)
	}
	stats := map[string][2]float64{}
	for loc, pps := range byLocation {
		stats[loc] = [2]float64{mean(pps), std(pps)}
	}

	out := rows[:0:0]
	for _, r := range rows {
		s := stats[r.Location]
		lo := s[0] - band*s[1]
		hi := s[0] + band*s[1]
		if r.PricePerSqft > lo && r.PricePerSqft <= hi {
			out = append(out, r)
		}
	}
	return out
}

// RemoveBHKOutliers drops, per location, rows whose price-per-sqft falls
// below the mean of the next-smaller bedroom group, when that group carries
// more than groupMin samples. A 3-bedroom flat priced under the typical
// 2-bedroom flat in the same area is treated as bad data.
func RemoveBHKOutliers(rows []Row, groupMin int) []Row {
	type groupStats struct {
		mean  float64
		count int
	}
	byLocation := map[string]map[int][]float64{}
	for _, r := range rows {
		if byLocation[r.Location] == nil {
			byLocation[r.Location] = map[int][]float64{}
		}
		byLocation[r.Location][r.BHK] = append(byLocation[r.Location][r.BHK], r.PricePerSqft)
	}
	stats := map[string]map[int]groupStats{}
	for loc, groups := range byLocation {
		stats[loc] = map[int]groupStats{}
		for bhk, pps := range groups {
			stats[loc][bhk] = groupStats{mean: mean(pps), count: len(pps)}
		}
	}

	out := rows[:0:0]
	for _, r := range rows {
		smaller, ok := stats[r.Location][r.BHK-1]
		if ok && smaller.count > groupMin && r.PricePerSqft < smaller.mean {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Clean runs the full pipeline in order.
func Clean(rows []Row, opts Options) []Row {
	rows = BucketRareLocations(rows, opts.RareLocationMax)
	rows = FilterMinSqftPerBHK(rows, opts.MinSqftPerBHK)
	rows = RemovePPSOutliers(rows, opts.PPSStdBand)
	rows = RemoveBHKOutliers(rows, opts.BHKGroupMin)
	return rows
}

// Encode one-hot encodes locations (dropping "other" to avoid collinearity)
// and returns the ordered column list, the design matrix and the targets.
func Encode(rows []Row) (columns []string, x [][]float64, y []float64) {
	locationSet := map[string]struct{}{}
	for _, r := range rows {
		if r.Location != "other" {
			locationSet[r.Location] = struct{}{}
		}
	}
	locations := make([]string, 0, len(locationSet))
	for loc := range locationSet {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	columns = append([]string{"total_sqft", "bath", "bhk"}, locations...)
	index := map[string]int{}
	for i, loc := range locations {
		index[loc] = 3 + i
	}

	x = make([][]float64, len(rows))
	y = make([]float64, len(rows))
	for i, r := range rows {
		features := make([]float64, len(columns))
		features[0] = r.TotalSqft
		features[1] = r.Bath
		features[2] = float64(r.BHK)
		if j, ok := index[r.Location]; ok {
			features[j] = 1
		}
		x[i] = features
		y[i] = r.Price
	}
	return columns, x, y
}
