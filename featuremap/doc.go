// Package featuremap encodes classical 2D points into quantum states.
//
// A feature map is a deterministic, pure function from a point to a unit-norm
// amplitude vector. Different maps reshape the geometry of the data, which
// changes the fidelity-based similarity between points.
//
// # Supported Maps
//
//   - KindAngle ("angle"): per-qubit RY/RZ angle encoding. Qubit i is prepared
//     as RZ(xᵢ/2)·RY(xᵢ)|0⟩ and the two qubits are combined by tensor product,
//     with qubit 0 on the least significant amplitude index.
//   - KindZZ ("zz"): ZZ entangling map. Each repetition applies H to both
//     qubits, a phase 2xᵢ per qubit, and a phase 2(π−x₀)(π−x₁) on |11⟩.
//
// The set of maps is closed: selection goes through the Kind enum or ByName,
// not open-ended string dispatch.
//
// # Usage
//
//	fm, _ := featuremap.New(featuremap.KindAngle)
//	s, err := fm.Encode(model.Point{X: 0.4, Y: 1.2})
package featuremap
