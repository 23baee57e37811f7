// Package estimator holds the regression model artifact: a bagged ensemble
// of regression trees plus the ordered feature-column list it was trained
// with. The artifact is loaded once at startup and shared read-only.
package estimator

import (
	"encoding/json"
	"fmt"
	"os"
)

// Estimator maps a feature vector to a base price.
type Estimator interface {
	Predict(features []float64) (float64, error)
}

// Node is one node of a regression tree, stored in a flat array. Leaf nodes
// carry Value; internal nodes route on Feature <= Threshold to Left, else
// Right (indexes into the same array).
type Node struct {
	Feature   int     `json:"f"`
	Threshold float64 `json:"t"`
	Left      int     `json:"l"`
	Right     int     `json:"r"`
	Value     float64 `json:"v"`
	Leaf      bool    `json:"leaf"`
}

// Tree is a single regression tree with its root at Nodes[0].
type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (t *Tree) predict(features []float64) float64 {
	i := 0
	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}

// Forest is a bootstrap-aggregated ensemble of regression trees. Prediction
// is the mean of the per-tree predictions.
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// Predict implements Estimator.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(f.Trees) == 0 {
		return 0, fmt.Errorf("forest has no trees")
	}
	if len(features) != f.NumFeatures {
		return 0, fmt.Errorf("expected %d features, got %d", f.NumFeatures, len(features))
	}
	sum := 0.0
	for i := range f.Trees {
		sum += f.Trees[i].predict(features)
	}
	return sum / float64(len(f.Trees)), nil
}

// LoadForest reads a serialized forest from disk.
func LoadForest(path string) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadForest: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("LoadForest: %w", err)
	}
	return &f, nil
}

// SaveForest serializes a forest to disk.
func SaveForest(path string, f *Forest) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("SaveForest: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("SaveForest: %w", err)
	}
	return nil
}
