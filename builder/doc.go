// Package builder places preset graph shapes on the editing canvas.
//
// Each preset is a Constructor that adds positioned nodes and weighted edges
// to a Target (a *core.Graph, or anything exposing the same AddNode/AddEdge
// pair). Node IDs are assigned by the graph, so presets compose: running
// Path(3) then Star(4) on the same graph yields two disjoint components with
// IDs 0..2 and 3..6.
//
// The package offers:
//
//   - Topologies: Path, Cycle, Star, Wheel, Grid, Complete.
//   - Layout options: WithCenter, WithSpacing.
//   - Edge weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     selected with WithWeightFn, WithConstantWeight or WithUniformWeight.
//   - Randomness: WithSeed / WithRand freeze stochastic weights.
//   - Lookup by name: Preset("wheel", 6, 0) for hosts that take presets as text.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors validate sizes and return sentinel errors (ErrTooFewVertices).
package builder
