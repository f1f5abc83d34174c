// Package compare measures agreement between two cluster labelings.
//
// Cluster memberships are materialized as Roaring bitmaps and all pair
// counting runs on bitmap cardinalities and intersections, so comparing the
// quantum and classical partitions of the same dataset is a handful of set
// operations.
//
//   - RandIndex: fraction of point pairs both labelings agree on, in [0, 1]
//   - AdjustedRandIndex: Rand index corrected for chance (Hubert-Arabie);
//     1 for identical partitions, ~0 for independent ones
//
// Both metrics are invariant under permutation of cluster indices, which is
// exactly what the quantum-vs-classical comparison needs: the two runs have
// no reason to agree on which cluster is "0".
package compare
