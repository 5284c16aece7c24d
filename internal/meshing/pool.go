package meshing

import (
	"context"
	"sync"
)

// Job is one chunk waiting to be meshed. Coord is opaque to this package —
// it is handed back unchanged on Result so the caller can match results to
// the chunk they came from.
type Job struct {
	Coord  [3]int
	Source VoxelSource
	AO     bool
	Result chan Result
}

// Result is what a worker sends back after meshing a Job. Vertices is a
// fresh copy of the worker's MeshData output, so it stays valid after the
// worker moves on to its next job and the receiver may keep it as is.
type Result struct {
	Coord    [3]int
	Vertices []uint64
	Spans    [6][2]int
}

// Pool runs a fixed number of meshing workers, each with its own MeshData
// scratch arena so no synchronization is needed inside a worker's Build
// call (spec.md §5). Submit a Job per chunk; read its Result off the
// channel the Job carries.
type Pool struct {
	jobs   chan Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool starts workers goroutines, each looping on jobs until the pool is
// shut down. queueSize bounds how many pending jobs Submit can enqueue
// before it blocks.
func NewPool(workers, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan Job, queueSize),
		cancel: cancel,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(ctx)
	}
	return p
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	md := NewMeshData()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if job.AO {
				md.BuildAO(job.Source)
			} else {
				md.Build(job.Source)
			}
			res := Result{Coord: job.Coord}
			res.Vertices = append(res.Vertices, md.Vertices...)
			for f := FacePosX; f <= FaceNegZ; f++ {
				begin, length := md.FaceSpan(f)
				res.Spans[f] = [2]int{begin, length}
			}
			job.Result <- res
		}
	}
}

// Submit enqueues a job, blocking if the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit enqueues a job without blocking, reporting false if the queue
// was full.
func (p *Pool) TrySubmit(job Job) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// QueueLength reports how many jobs are currently waiting to be picked up.
func (p *Pool) QueueLength() int {
	return len(p.jobs)
}

// Shutdown cancels all workers and waits for them to return. Submit must
// not be called after Shutdown.
func (p *Pool) Shutdown() {
	p.cancel()
	close(p.jobs)
	p.wg.Wait()
}
