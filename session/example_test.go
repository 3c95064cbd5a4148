package session_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/scheduler"
	"github.com/katalvlaran/pathboard/session"
)

// ExampleSession draws a triangle, runs from node 0 and prints each step.
func ExampleSession() {
	ctx := context.Background()
	clk := scheduler.NewFakeClock(time.Unix(0, 0))
	s := session.New(session.WithClock(clk), session.WithLogger(ctxlog.Discard()))
	defer s.Close()

	s.Subscribe(func(ev session.Event) {
		if ev.Kind == session.StepAdvanced {
			fmt.Printf("step %d: node %d settled at %d\n", ev.State.Steps, ev.Step.Node, ev.Step.Distance)
		}
	})

	s.SetMode(editor.AddingNode)
	for _, x := range []float64{100, 200, 300} {
		_, _ = s.Click(ctx, x, 100)
	}
	s.SetMode(editor.AddingEdge)
	for _, e := range []struct {
		a, b float64
		w    string
	}{{100, 200, "4"}, {200, 300, "1"}, {100, 300, "10"}} {
		s.SetWeight(e.w)
		_, _ = s.Click(ctx, e.a, 100)
		_, _ = s.Click(ctx, e.b, 100)
	}

	if _, err := s.Run(ctx, 0); err != nil {
		fmt.Println(err)
		return
	}
	clk.Advance(2 * scheduler.DefaultDelay)

	res, _ := s.Result()
	fmt.Print(res)
	// Output:
	// step 1: node 0 settled at 0
	// step 2: node 1 settled at 4
	// step 3: node 2 settled at 5
	// Shortest path results from node 0:
	//
	// node 0: distance=0, path=0
	// node 1: distance=4, path=0 → 1
	// node 2: distance=5, path=0 → 1 → 2
}
