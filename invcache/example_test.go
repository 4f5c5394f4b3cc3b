// SPDX-License-Identifier: MIT
// Runnable examples for the memoizing inverse cache.

package invcache_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// noticeLogger prints bare messages: console timestamps would make example
// output differ run to run.
type noticeLogger struct{}

func (noticeLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noticeLogger) Info(msg string, keysAndValues ...interface{})  { fmt.Println(msg) }
func (noticeLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noticeLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noticeLogger) IsDebugEnabled() bool                           { return false }
func (noticeLogger) IsInfoEnabled() bool                            { return true }

// ExampleSolve computes an inverse once and serves the memoized copy on the
// second call, announcing the hit at Info.
func ExampleSolve() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 2)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 4)
	_ = a.Set(1, 1, 3)

	c := invcache.New(a,
		invcache.WithLogger(noticeLogger{}),
		invcache.WithNoTracing(),
		invcache.WithNoMetrics(),
	)

	first, _ := invcache.Solve(context.Background(), c)
	fmt.Print(first)

	// The second call skips the solver entirely.
	second, _ := invcache.Solve(context.Background(), c)
	fmt.Println("same reference:", first == second)

	// Output:
	// [1.5, -0.5]
	// [-2, 1]
	// getting cached data
	// same reference: true
}

// ExampleCache_Store shows that storing new data always discards the memoized
// inverse, so the next Solve recomputes.
func ExampleCache_Store() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 2)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 4)
	_ = a.Set(1, 1, 3)

	c := invcache.New(a,
		invcache.WithLogger(noticeLogger{}),
		invcache.WithNoTracing(),
		invcache.WithNoMetrics(),
	)
	_, _ = invcache.Solve(context.Background(), c)

	b, _ := matrix.NewDense(2, 2)
	_ = b.Set(0, 0, 1)
	_ = b.Set(0, 1, 2)
	_ = b.Set(1, 0, 3)
	_ = b.Set(1, 1, 4)
	c.Store(b)

	_, ok := c.Inverse()
	fmt.Println("cached after store:", ok)

	inv, _ := invcache.Solve(context.Background(), c)
	fmt.Print(inv)

	// Output:
	// cached after store: false
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleNew constructs a cache without data; the placeholder keeps the shape
// contract but stays singular until a real Store.
func ExampleNew() {
	c := invcache.New(nil,
		invcache.WithLogger(noticeLogger{}),
		invcache.WithNoTracing(),
		invcache.WithNoMetrics(),
	)

	_, err := invcache.Solve(context.Background(), c)
	fmt.Println("singular placeholder:", errors.Is(err, matrix.ErrSingular))

	// Output:
	// singular placeholder: true
}
