package meshing

import "testing"

func TestPoolMeshesSubmittedJobs(t *testing.T) {
	p := NewPool(2, 4)
	defer p.Shutdown()

	grids := make([]*grid, 3)
	for i := range grids {
		g := &grid{}
		g.Set(10+i, 10, 10, uint8(i+1))
		grids[i] = g
	}

	results := make(chan Result, len(grids))
	for i, g := range grids {
		p.Submit(Job{Coord: [3]int{i, 0, 0}, Source: g, Result: results})
	}

	seen := make(map[[3]int]Result, len(grids))
	for range grids {
		r := <-results
		seen[r.Coord] = r
	}

	for i := range grids {
		r, ok := seen[[3]int{i, 0, 0}]
		if !ok {
			t.Fatalf("missing result for job %d", i)
		}
		if len(r.Vertices) != 6 {
			t.Errorf("job %d: got %d quads, want 6", i, len(r.Vertices))
		}
	}
}

func TestPoolAOJob(t *testing.T) {
	p := NewPool(1, 1)
	defer p.Shutdown()

	g := &grid{}
	g.Set(5, 5, 5, 1)

	results := make(chan Result, 1)
	p.Submit(Job{Coord: [3]int{0, 0, 0}, Source: g, AO: true, Result: results})
	r := <-results
	if len(r.Vertices) != 6 {
		t.Fatalf("got %d quads, want 6", len(r.Vertices))
	}
}

func TestPoolQueueLengthAndShutdown(t *testing.T) {
	p := NewPool(1, 8)
	if n := p.QueueLength(); n != 0 {
		t.Fatalf("fresh pool queue length = %d, want 0", n)
	}
	p.Shutdown()
}
