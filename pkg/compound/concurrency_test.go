package compound

import (
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestExternalLockDisciplineRequired documents spec §5's concurrency
// model: the package has no internal synchronization whatsoever, so
// concurrent mutation of a shared Node from multiple goroutines requires
// an external lock supplied by the caller. This test doesn't (and can't)
// prove the package is safe without one; it demonstrates the documented
// discipline — one mutex guarding all Adopt/Release calls against a
// shared node — working correctly under concurrent load.
func TestExternalLockDisciplineRequired(t *testing.T) {
	root := newTestNode()
	var mu sync.Mutex

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			child := newTestNode()
			mu.Lock()
			root.adoptChild(child)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	n := len(root.children)
	mu.Unlock()
	if n != 50 {
		t.Fatalf("expected 50 adopted children under the external lock, got %d", n)
	}
}
