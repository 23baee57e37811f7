// File: cmd/trainer/main.go
// Offline trainer: reads the raw listings CSV and writes the model artifact
// the API server loads at startup.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"
	"github.com/devang404/bangalore-house-price-predictor/internal/trainer"

	"github.com/spf13/cobra"
)

var (
	csvPath     string
	modelOut    string
	columnsOut  string
	trees       int
	maxDepth    int
	minSqftBHK  float64
	rareMax     int
	ppsBand     float64
	bhkGroupMin int
	seed        int64
)

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Train the house price model from a raw CSV dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return train()
	},
}

func init() {
	rootCmd.Flags().StringVar(&csvPath, "csv", "BHP.csv", "raw dataset path")
	rootCmd.Flags().StringVar(&modelOut, "model-out", "model.json", "output path for the serialized model")
	rootCmd.Flags().StringVar(&columnsOut, "columns-out", "columns.json", "output path for the column list")
	rootCmd.Flags().IntVar(&trees, "trees", 100, "number of trees in the ensemble")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 12, "maximum tree depth")
	rootCmd.Flags().Float64Var(&minSqftBHK, "min-sqft-per-bhk", 300, "minimum square footage per bedroom")
	rootCmd.Flags().IntVar(&rareMax, "rare-location-max", 10, "locations with at most this many listings become 'other'")
	rootCmd.Flags().Float64Var(&ppsBand, "pps-std-band", 1.0, "price-per-sqft outlier band in standard deviations")
	rootCmd.Flags().IntVar(&bhkGroupMin, "bhk-group-min", 5, "minimum group size for bedroom anomaly removal")
	rootCmd.Flags().Int64Var(&seed, "seed", 10, "random seed for bootstrapping and the holdout split")
}

func train() error {
	rows, err := trainer.LoadCSV(csvPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d usable rows from %s", len(rows), csvPath)

	rows = trainer.Clean(rows, trainer.Options{
		RareLocationMax: rareMax,
		MinSqftPerBHK:   minSqftBHK,
		PPSStdBand:      ppsBand,
		BHKGroupMin:     bhkGroupMin,
	})
	log.Printf("%d rows after cleaning", len(rows))
	if len(rows) == 0 {
		return fmt.Errorf("no rows left after cleaning")
	}

	columns, x, y := trainer.Encode(rows)
	log.Printf("encoded %d features (%d locations)", len(columns), len(columns)-3)

	trainIdx, testIdx := trainer.TrainTestSplit(len(x), 0.2, seed)
	trainX, trainY := subset(x, y, trainIdx)

	forest := trainer.TrainForest(trainX, trainY, trainer.ForestOptions{
		Trees:    trees,
		MaxDepth: maxDepth,
		MinLeaf:  1,
		Seed:     seed,
	})

	if len(testIdx) > 0 {
		testX, testY := subset(x, y, testIdx)
		predictions := make([]float64, len(testX))
		for i, features := range testX {
			predictions[i], _ = forest.Predict(features)
		}
		log.Printf("holdout R^2: %.4f", trainer.RSquared(predictions, testY))
	}

	if err := estimator.SaveForest(modelOut, forest); err != nil {
		return err
	}
	if err := writeColumns(columnsOut, columns); err != nil {
		return err
	}
	log.Printf("wrote %s and %s", modelOut, columnsOut)
	return nil
}

func subset(x [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	outX := make([][]float64, len(idx))
	outY := make([]float64, len(idx))
	for i, j := range idx {
		outX[i] = x[j]
		outY[i] = y[j]
	}
	return outX, outY
}

func writeColumns(path string, columns []string) error {
	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(c)
	}
	raw, err := json.Marshal(map[string][]string{"data_columns": lowered})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
