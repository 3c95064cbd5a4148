// Package editor implements the Interaction Mode Controller: a small state
// machine that turns pointer clicks on the canvas into Graph Store mutations.
//
// Modes:
//
//	Idle        – clicks are ignored.
//	AddingNode  – every click adds a node at the click point.
//	AddingEdge  – a click on a node selects it; the second selection adds an
//	              edge between the two selected nodes with the current weight.
//
// Mode switches are unconditional and always clear the pending selection.
// A click in AddingEdge that misses every node is a no-op. When AddEdge fails
// (duplicate pair, same node twice) the selection is cleared and the store
// error is returned; the controller stays in AddingEdge.
//
// Weight input is coerced with ParseWeight: the leading integer of the raw
// text is used, and anything unparsable or zero becomes DefaultWeight.
//
// A Controller is not safe for concurrent use.
package editor
