// Package session owns one editing session: a graph, its interaction
// controller, and at most one shortest-path run driven by a step scheduler.
//
// A Session replaces free-standing module state with one explicit object.
// Every command is serialised by the session mutex, including the deferred
// steps fired by the scheduler, so the graph, the controller and the engine
// are never touched concurrently.
//
// Run lifecycle:
//
//	Run(start)  validate → cancel any pending step of the previous run →
//	            initialise a fresh engine → first step inline → scheduler
//	            drives the remaining steps, one per delay.
//	Reset()     cancel the pending step → discard the run → clear graph
//	            and controller.
//
// While a run is in progress, edits are refused with ErrRunInProgress
// (WithEditLock(false) lifts this; the in-flight run then ignores nodes
// created after it started).
//
// Notifications are delivered to Subscribe listeners synchronously, under the
// session lock, in the order the changes happen. Listeners must not call back
// into the session.
package session
