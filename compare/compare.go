package compare

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Memberships converts a labeling into one bitmap of point indices per
// cluster. Labels must be in [0, k); k is inferred as max(label)+1.
func Memberships(labels []int) ([]*roaring.Bitmap, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("compare: empty labeling")
	}
	k := 0
	for i, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("compare: negative label %d at index %d", l, i)
		}
		if l+1 > k {
			k = l + 1
		}
	}
	sets := make([]*roaring.Bitmap, k)
	for j := range sets {
		sets[j] = roaring.New()
	}
	for i, l := range labels {
		sets[l].Add(uint32(i))
	}
	return sets, nil
}

// RandIndex returns the fraction of point pairs on which the two labelings
// agree (same cluster in both, or different cluster in both).
func RandIndex(a, b []int) (float64, error) {
	cells, rows, cols, n, err := contingency(a, b)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 1, nil
	}

	var sumCells, sumRows, sumCols float64
	for _, row := range cells {
		for _, nij := range row {
			sumCells += pairs(nij)
		}
	}
	for _, ni := range rows {
		sumRows += pairs(ni)
	}
	for _, nj := range cols {
		sumCols += pairs(nj)
	}

	total := pairs(uint64(n))
	agree := total + 2*sumCells - sumRows - sumCols
	return agree / total, nil
}

// AdjustedRandIndex returns the Hubert-Arabie adjusted Rand index.
// Identical partitions score 1; the expected score of two independent random
// partitions is 0. Degenerate cases where the index is undefined (both
// partitions a single cluster, or all singletons) score 1.
func AdjustedRandIndex(a, b []int) (float64, error) {
	cells, rows, cols, n, err := contingency(a, b)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 1, nil
	}

	var sumCells, sumRows, sumCols float64
	for _, row := range cells {
		for _, nij := range row {
			sumCells += pairs(nij)
		}
	}
	for _, ni := range rows {
		sumRows += pairs(ni)
	}
	for _, nj := range cols {
		sumCols += pairs(nj)
	}

	total := pairs(uint64(n))
	expected := sumRows * sumCols / total
	maxIndex := (sumRows + sumCols) / 2
	if maxIndex == expected {
		return 1, nil
	}
	return (sumCells - expected) / (maxIndex - expected), nil
}

// contingency builds the cluster-overlap table of two labelings via bitmap
// intersections: cells[i][j] = |Aᵢ ∩ Bⱼ|.
func contingency(a, b []int) (cells [][]uint64, rows, cols []uint64, n int, err error) {
	if len(a) != len(b) {
		return nil, nil, nil, 0, fmt.Errorf("compare: labelings have different lengths (%d vs %d)", len(a), len(b))
	}

	setsA, err := Memberships(a)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	setsB, err := Memberships(b)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	cells = make([][]uint64, len(setsA))
	rows = make([]uint64, len(setsA))
	cols = make([]uint64, len(setsB))
	for i, sa := range setsA {
		cells[i] = make([]uint64, len(setsB))
		rows[i] = sa.GetCardinality()
		for j, sb := range setsB {
			cells[i][j] = roaring.And(sa, sb).GetCardinality()
		}
	}
	for j, sb := range setsB {
		cols[j] = sb.GetCardinality()
	}
	return cells, rows, cols, len(a), nil
}

// pairs returns C(n, 2) as a float64.
func pairs(n uint64) float64 {
	return float64(n) * float64(n-1) / 2
}
