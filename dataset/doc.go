// Package dataset generates small synthetic 2D datasets for clustering demos.
//
// Moons and Circles are classic non-linear layouts: Euclidean distance
// struggles to separate them, which makes the effect of a quantum feature map
// easy to see. Returned ground-truth labels are for coloring plots only;
// clustering itself is fully unsupervised.
//
// Generators take an explicit seed and keep no package state, so the same
// arguments always reproduce the same points.
package dataset
