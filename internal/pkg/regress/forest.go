// Package regress implements a bagged ensemble of regression trees.
// Each tree is trained on a bootstrap sample of the rows and a random subset of
// the feature columns; predictions are the mean over all trees. Training is
// deterministic for a fixed seed, which keeps model behavior reproducible
// across process restarts given the same input ordering.
package regress

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	// ErrNoTrainingData is returned when Fit is called with an empty sample set.
	ErrNoTrainingData = errors.New("training data must not be empty")

	// ErrDimensionMismatch is returned when feature rows and labels disagree in
	// length, or when a prediction vector has the wrong width.
	ErrDimensionMismatch = errors.New("feature dimensions do not match")
)

// Config holds the fixed hyperparameters of the ensemble.
type Config struct {
	// Seed initializes the deterministic random source used for bootstrap and
	// feature sampling.
	Seed uint64

	// Trees is the number of estimators in the ensemble.
	Trees int

	// MaxDepth bounds the depth of every tree.
	MaxDepth int

	// MinSamples is the minimum number of samples a node must hold to be split.
	MinSamples int

	// FeatureFraction is the share of feature columns sampled per tree.
	FeatureFraction float64

	// Replacement selects bootstrap sampling with replacement.
	Replacement bool
}

// DefaultConfig returns the fixed production configuration of the ensemble.
func DefaultConfig() Config {
	return Config{
		Seed:            42,
		Trees:           50,
		MaxDepth:        10,
		MinSamples:      3,
		FeatureFraction: 0.8,
		Replacement:     true,
	}
}

// Forest is a trained ensemble. It is immutable after Fit and safe for
// concurrent prediction.
type Forest struct {
	trees     []*treeNode
	nFeatures int
}

// Fit trains an ensemble on the given samples. Every row of x must have the
// same width as the first, and x and y must have equal length.
func Fit(x [][]float64, y []float64, cfg Config) (*Forest, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d feature rows, %d labels", ErrDimensionMismatch, len(x), len(y))
	}

	nFeatures := len(x[0])
	for _, row := range x {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("%w: ragged feature row", ErrDimensionMismatch)
		}
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	trees := make([]*treeNode, 0, cfg.Trees)

	for range cfg.Trees {
		sampleX, sampleY := bootstrap(x, y, cfg.Replacement, rng)
		builder := &treeBuilder{
			maxDepth:   cfg.MaxDepth,
			minSamples: cfg.MinSamples,
			features:   sampleFeatures(nFeatures, cfg.FeatureFraction, rng),
		}
		trees = append(trees, builder.build(sampleX, sampleY, 0))
	}

	return &Forest{trees: trees, nFeatures: nFeatures}, nil
}

// Predict returns the ensemble mean for one feature vector.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(features) != f.nFeatures {
		return 0, fmt.Errorf("%w: expected %d features, got %d",
			ErrDimensionMismatch, f.nFeatures, len(features))
	}

	var sum float64
	for _, t := range f.trees {
		sum += t.predict(features)
	}
	return sum / float64(len(f.trees)), nil
}

// NumFeatures returns the feature-vector width the forest was trained on.
func (f *Forest) NumFeatures() int {
	return f.nFeatures
}

// bootstrap draws a row sample of the original size, with or without replacement.
func bootstrap(x [][]float64, y []float64, replacement bool, rng *rand.Rand) ([][]float64, []float64) {
	n := len(y)
	sampleX := make([][]float64, n)
	sampleY := make([]float64, n)

	if replacement {
		for i := range n {
			j := rng.IntN(n)
			sampleX[i] = x[j]
			sampleY[i] = y[j]
		}
		return sampleX, sampleY
	}

	for i, j := range rng.Perm(n) {
		sampleX[i] = x[j]
		sampleY[i] = y[j]
	}
	return sampleX, sampleY
}

// sampleFeatures picks a random subset of feature column indices for one tree.
// At least one feature is always selected.
func sampleFeatures(nFeatures int, fraction float64, rng *rand.Rand) []int {
	k := int(math.Round(fraction * float64(nFeatures)))
	if k < 1 {
		k = 1
	}
	if k > nFeatures {
		k = nFeatures
	}
	return rng.Perm(nFeatures)[:k]
}
