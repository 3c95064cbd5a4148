// Package pathboard is an interactive canvas for weighted undirected graphs
// that animates Dijkstra's single-source shortest-path algorithm one
// finalised node at a time.
//
// What is pathboard?
//
//	A small, thread-safe toolkit plus server that brings together:
//		• Graph store: click-placed nodes, weighted edges, hit-testing
//		• Editor: idle / add-node / add-edge modes with two-click edges
//		• Step engine: observable Dijkstra state after every finalisation
//		• Scheduler: cancellable, clock-injectable step timer
//		• Session: one canvas, at most one run, change notifications
//		• Presets: path, cycle, star, wheel, grid and complete layouts
//
// Packages:
//
//	core/      Graph, Node, Edge; change hooks; snapshots
//	editor/    interaction modes and click interpretation
//	dijkstra/  step engine, instant solver, textual report
//	scheduler/ delayed step driver with generation-guarded timers
//	session/   command serialisation, edit lock, events, tracing
//	builder/   preset layouts placed on the canvas
//	internal/  config, logging, metrics, telemetry, HTTP API, scripts
//	cmd/       the pathboard CLI (serve, replay, paths)
//
// Quick start:
//
//	s := session.New(session.WithStepDelay(300 * time.Millisecond))
//	s.SetMode(editor.AddingNode)
//	s.Click(ctx, 100, 100) // node 0
//	s.Click(ctx, 200, 100) // node 1
//	s.SetMode(editor.AddingEdge)
//	s.SetWeight("4")
//	s.Click(ctx, 100, 100)
//	s.Click(ctx, 200, 100) // edge 0–1, weight 4
//	s.Run(ctx, 0)
//	s.Wait(ctx)
//	res, _ := s.Result()
//	fmt.Print(res) // Shortest path results from node 0: ...
//
// Negative weights, directed edges and node or edge removal are not supported.
package pathboard
