package regress

import "sort"

// treeNode is a single node of a regression tree. Internal nodes route a sample
// left or right by comparing one feature against a threshold; leaves carry the
// mean label of the training samples that reached them.
type treeNode struct {
	isLeaf    bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// treeBuilder grows a regression tree with variance-reduction splitting over a
// fixed candidate feature subset. The subset is chosen per tree by the forest.
type treeBuilder struct {
	maxDepth   int
	minSamples int
	features   []int
}

func (b *treeBuilder) build(x [][]float64, y []float64, depth int) *treeNode {
	if depth >= b.maxDepth || len(y) < b.minSamples {
		return &treeNode{isLeaf: true, value: mean(y)}
	}

	feature, threshold, ok := b.bestSplit(x, y)
	if !ok {
		return &treeNode{isLeaf: true, value: mean(y)}
	}

	leftX, leftY, rightX, rightY := partition(x, y, feature, threshold)
	if len(leftY) == 0 || len(rightY) == 0 {
		return &treeNode{isLeaf: true, value: mean(y)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      b.build(leftX, leftY, depth+1),
		right:     b.build(rightX, rightY, depth+1),
	}
}

// bestSplit scans the candidate features for the threshold minimizing the summed
// squared error of both halves. Thresholds are midpoints between distinct
// adjacent feature values. Returns ok=false when no split improves on a leaf.
func (b *treeBuilder) bestSplit(x [][]float64, y []float64) (int, float64, bool) {
	n := len(y)
	baseline := sumSquaredError(y)

	bestErr := baseline
	bestFeature := -1
	bestThreshold := 0.0
	found := false

	order := make([]int, n)
	for _, f := range b.features {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return x[order[i]][f] < x[order[j]][f]
		})

		// Running sums allow evaluating every threshold in one pass.
		var leftSum, leftSq float64
		totalSum, totalSq := sums(y)

		for i := 0; i < n-1; i++ {
			yi := y[order[i]]
			leftSum += yi
			leftSq += yi * yi

			cur, next := x[order[i]][f], x[order[i+1]][f]
			if cur == next {
				continue
			}

			nl := float64(i + 1)
			nr := float64(n - i - 1)
			leftErr := leftSq - leftSum*leftSum/nl
			rightSum := totalSum - leftSum
			rightErr := (totalSq - leftSq) - rightSum*rightSum/nr

			if err := leftErr + rightErr; err < bestErr {
				bestErr = err
				bestFeature = f
				bestThreshold = (cur + next) / 2
				found = true
			}
		}
	}

	return bestFeature, bestThreshold, found
}

func (n *treeNode) predict(features []float64) float64 {
	node := n
	for !node.isLeaf {
		if features[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

func partition(x [][]float64, y []float64, feature int, threshold float64) ([][]float64, []float64, [][]float64, []float64) {
	var leftX, rightX [][]float64
	var leftY, rightY []float64
	for i, row := range x {
		if row[feature] <= threshold {
			leftX = append(leftX, row)
			leftY = append(leftY, y[i])
		} else {
			rightX = append(rightX, row)
			rightY = append(rightY, y[i])
		}
	}
	return leftX, leftY, rightX, rightY
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sums(values []float64) (float64, float64) {
	var sum, sq float64
	for _, v := range values {
		sum += v
		sq += v * v
	}
	return sum, sq
}

func sumSquaredError(values []float64) float64 {
	sum, sq := sums(values)
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	return sq - sum*sum/n
}
