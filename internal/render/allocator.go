package render

import "sort"

// slotAllocator is a best-fit free-list allocator over a fixed-size arena
// measured in quads (not bytes): each chunk's mesh claims one contiguous
// range of quad slots in a single shared GPU buffer, grounded on the
// allocation/removal shape of Leterax-go-voxels' ChunkBufferManager
// (AddChunk/RemoveChunk against one big persistent buffer) but using plain
// best-fit free-list bookkeeping instead of that manager's fixed
// per-chunk slot size and triple buffering, since packed-quad chunk
// meshes here vary widely in size and fixed slots would waste most of
// the arena on sparse chunks.
type slotAllocator struct {
	capacity int
	free     []span // sorted by offset, non-overlapping, non-adjacent-merged
	used     map[int]span
}

type span struct {
	offset int
	length int
}

// newSlotAllocator returns an allocator managing capacity quad slots,
// initially one large free span.
func newSlotAllocator(capacity int) *slotAllocator {
	return &slotAllocator{
		capacity: capacity,
		free:     []span{{offset: 0, length: capacity}},
		used:     make(map[int]span),
	}
}

// Allocate reserves a contiguous run of length quad slots, choosing the
// smallest free span that fits (best-fit) to reduce fragmentation from
// larger spans being chipped away by every small chunk. It records the
// span under id (the key later passed to Free and Lookup) and returns its
// offset, or ok=false if no free span is large enough.
func (a *slotAllocator) Allocate(id, length int) (offset int, ok bool) {
	if length <= 0 {
		return 0, false
	}
	best := -1
	for i, s := range a.free {
		if s.length < length {
			continue
		}
		if best == -1 || s.length < a.free[best].length {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}

	chosen := a.free[best]
	if chosen.length == length {
		a.free = append(a.free[:best], a.free[best+1:]...)
	} else {
		a.free[best] = span{offset: chosen.offset + length, length: chosen.length - length}
	}
	a.used[id] = span{offset: chosen.offset, length: length}
	return chosen.offset, true
}

// Free releases the span previously allocated under id, merging it back
// into any adjacent free spans. It is a no-op if id was never allocated.
func (a *slotAllocator) Free(id int) {
	s, ok := a.used[id]
	if !ok {
		return
	}
	delete(a.used, id)

	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].offset >= s.offset })
	a.free = append(a.free, span{})
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = s

	merged := a.free[:0]
	for _, f := range a.free {
		if n := len(merged); n > 0 && merged[n-1].offset+merged[n-1].length == f.offset {
			merged[n-1].length += f.length
		} else {
			merged = append(merged, f)
		}
	}
	a.free = merged
}

// Lookup returns the span allocated under id, if any.
func (a *slotAllocator) Lookup(id int) (span, bool) {
	s, ok := a.used[id]
	return s, ok
}

// LargestFree returns the size of the largest contiguous free span, useful
// for deciding whether the arena needs to grow before the next Allocate.
func (a *slotAllocator) LargestFree() int {
	largest := 0
	for _, s := range a.free {
		if s.length > largest {
			largest = s.length
		}
	}
	return largest
}
