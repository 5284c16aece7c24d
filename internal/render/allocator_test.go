package render

import "testing"

func TestSlotAllocatorAllocateAndFree(t *testing.T) {
	a := newSlotAllocator(100)

	off1, ok := a.Allocate(1, 10)
	if !ok || off1 != 0 {
		t.Fatalf("first allocation: off=%d ok=%v, want 0 true", off1, ok)
	}
	off2, ok := a.Allocate(2, 20)
	if !ok || off2 != 10 {
		t.Fatalf("second allocation: off=%d ok=%v, want 10 true", off2, ok)
	}

	if got := a.LargestFree(); got != 70 {
		t.Fatalf("LargestFree = %d, want 70", got)
	}

	a.Free(1)
	if got := a.LargestFree(); got != 70 {
		t.Fatalf("after freeing id 1, LargestFree = %d, want 70 (span 0-10 not adjacent to the remaining 70 free at the end until id 2 frees too)", got)
	}

	a.Free(2)
	if got := a.LargestFree(); got != 100 {
		t.Fatalf("after freeing both, LargestFree = %d, want 100 (fully merged)", got)
	}
}

func TestSlotAllocatorBestFitPicksSmallestSufficientSpan(t *testing.T) {
	a := newSlotAllocator(30)
	// carve: [0,10) used, [10,15) used, [15,25) used, [25,30) free
	a.Allocate(1, 10)
	a.Allocate(2, 5)
	a.Allocate(3, 10)
	a.Free(1) // free spans: [0,10) and [25,30), not adjacent

	// A 5-slot request fits both gaps; best-fit takes the exact-size
	// [25,30) instead of chipping the larger [0,10).
	off, ok := a.Allocate(4, 5)
	if !ok || off != 25 {
		t.Fatalf("Allocate(4,5) = %d,%v, want 25,true", off, ok)
	}
}

func TestSlotAllocatorAllocateFailsWhenArenaFull(t *testing.T) {
	a := newSlotAllocator(10)
	if _, ok := a.Allocate(1, 10); !ok {
		t.Fatal("expected full-capacity allocation to succeed")
	}
	if _, ok := a.Allocate(2, 1); ok {
		t.Fatal("expected allocation to fail once arena is full")
	}
}

func TestSlotAllocatorFreeUnknownIDIsNoOp(t *testing.T) {
	a := newSlotAllocator(10)
	a.Free(999) // must not panic
	if got := a.LargestFree(); got != 10 {
		t.Fatalf("LargestFree = %d, want 10", got)
	}
}

func TestSlotAllocatorLookup(t *testing.T) {
	a := newSlotAllocator(50)
	off, ok := a.Allocate(7, 12)
	if !ok {
		t.Fatal("allocation failed")
	}
	s, ok := a.Lookup(7)
	if !ok || s.offset != off || s.length != 12 {
		t.Fatalf("Lookup(7) = %+v, ok=%v; want offset=%d length=12", s, ok, off)
	}
	if _, ok := a.Lookup(8); ok {
		t.Fatal("Lookup of never-allocated id should report false")
	}
}
