package trainer

import (
	"math"
	"math/rand"
	"sort"

	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"
)

// ForestOptions controls forest training.
type ForestOptions struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

// DefaultForestOptions bounds depth and tree count to keep the artifact
// small.
func DefaultForestOptions() ForestOptions {
	return ForestOptions{Trees: 100, MaxDepth: 12, MinLeaf: 1, Seed: 10}
}

// TrainForest fits a bootstrap-aggregated ensemble of regression trees.
func TrainForest(x [][]float64, y []float64, opts ForestOptions) *estimator.Forest {
	if opts.Trees <= 0 {
		opts.Trees = 1
	}
	if opts.MinLeaf <= 0 {
		opts.MinLeaf = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	numFeatures := 0
	if len(x) > 0 {
		numFeatures = len(x[0])
	}

	forest := &estimator.Forest{NumFeatures: numFeatures}
	for t := 0; t < opts.Trees; t++ {
		sample := make([]int, len(x))
		for i := range sample {
			sample[i] = rng.Intn(len(x))
		}
		tree := buildTree(x, y, sample, opts)
		forest.Trees = append(forest.Trees, *tree)
	}
	return forest
}

type treeBuilder struct {
	x    [][]float64
	y    []float64
	opts ForestOptions
	tree *estimator.Tree
}

func buildTree(x [][]float64, y []float64, idx []int, opts ForestOptions) *estimator.Tree {
	b := &treeBuilder{x: x, y: y, opts: opts, tree: &estimator.Tree{}}
	b.grow(idx, 0)
	return b.tree
}

// grow appends the subtree for idx and returns its node index.
func (b *treeBuilder) grow(idx []int, depth int) int {
	node := len(b.tree.Nodes)
	b.tree.Nodes = append(b.tree.Nodes, estimator.Node{})

	if depth >= b.opts.MaxDepth || len(idx) <= 2*b.opts.MinLeaf {
		b.tree.Nodes[node] = leafNode(b.y, idx)
		return node
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		b.tree.Nodes[node] = leafNode(b.y, idx)
		return node
	}

	var left, right []int
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.opts.MinLeaf || len(right) < b.opts.MinLeaf {
		b.tree.Nodes[node] = leafNode(b.y, idx)
		return node
	}

	leftIdx := b.grow(left, depth+1)
	rightIdx := b.grow(right, depth+1)
	b.tree.Nodes[node] = estimator.Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      leftIdx,
		Right:     rightIdx,
	}
	return node
}

func leafNode(y []float64, idx []int) estimator.Node {
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	return estimator.Node{Leaf: true, Value: sum / float64(len(idx))}
}

// bestSplit scans every feature for the threshold minimizing the summed
// squared error of the two children, via a single sorted pass with prefix
// sums.
func (b *treeBuilder) bestSplit(idx []int) (feature int, threshold float64, ok bool) {
	bestSSE := math.Inf(1)
	numFeatures := len(b.x[idx[0]])

	order := make([]int, len(idx))
	for f := 0; f < numFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(i, j int) bool { return b.x[order[i]][f] < b.x[order[j]][f] })

		totalSum, totalSq := 0.0, 0.0
		for _, i := range order {
			totalSum += b.y[i]
			totalSq += b.y[i] * b.y[i]
		}

		leftSum, leftSq := 0.0, 0.0
		n := float64(len(order))
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			leftSum += b.y[i]
			leftSq += b.y[i] * b.y[i]

			// Only split between distinct feature values.
			if b.x[i][f] == b.x[order[k+1]][f] {
				continue
			}
			nl := float64(k + 1)
			nr := n - nl
			if int(nl) < b.opts.MinLeaf || int(nr) < b.opts.MinLeaf {
				continue
			}

			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (b.x[i][f] + b.x[order[k+1]][f]) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

// TrainTestSplit shuffles indices and carves off a test fraction.
func TrainTestSplit(n int, testFrac float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	cut := int(float64(n) * testFrac)
	return perm[cut:], perm[:cut]
}

// RSquared is the coefficient of determination of predictions against
// actuals.
func RSquared(predicted, actual []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	m := mean(actual)
	ssRes, ssTot := 0.0, 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		ssRes += d * d
		t := actual[i] - m
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
