package octo

import "testing"

func TestSegmentPoolTakeRecycle(t *testing.T) {
	p := NewSegmentPool(defaultPoolByteBound)
	s := p.take()
	if s.owner != true || s.shared {
		t.Fatalf("fresh segment should be owner=true, shared=false")
	}
	if s.size() != 0 {
		t.Fatalf("fresh segment should be empty, got size %d", s.size())
	}

	s.limit = 10
	p.recycle(s)

	stats := p.Stats()
	if stats.Taken != 1 || stats.Recycled != 1 {
		t.Fatalf("stats = %+v, want Taken=1 Recycled=1", stats)
	}
}

func TestSegmentPoolRecycleClearsLinksAndCursors(t *testing.T) {
	p := NewSegmentPool(defaultPoolByteBound)
	s := p.take()
	s.limit = 100
	s.pos = 10
	s.prev, s.next = s, s
	p.recycle(s)

	s2 := p.take()
	if s2.pos != 0 || s2.limit != 0 {
		t.Fatalf("recycled-then-retaken segment must reset cursors, got pos=%d limit=%d", s2.pos, s2.limit)
	}
}

func TestSegmentPoolRefusesSharedSegments(t *testing.T) {
	p := NewSegmentPool(defaultPoolByteBound)
	s := p.take()
	s.shared = true
	p.recycle(s) // must not panic, and must not be returned by Put

	stats := p.Stats()
	if stats.Recycled != 1 {
		t.Fatalf("recycle should still count the attempt")
	}
}

func TestSegmentPoolByteBoundCaps(t *testing.T) {
	p := NewSegmentPool(segmentSize) // room for exactly one segment

	a := p.take()
	b := p.take()
	p.recycle(a) // fills the bound
	p.recycle(b) // should be dropped, not retained

	if p.retainedSize.Load() > segmentSize {
		t.Fatalf("retainedSize = %d, exceeds bound %d", p.retainedSize.Load(), segmentSize)
	}
}

func TestSegmentPoolZeroBoundDisablesRetention(t *testing.T) {
	p := NewSegmentPool(0)
	s := p.take()
	p.recycle(s)
	if p.retainedSize.Load() != 0 {
		t.Fatalf("zero bound must never retain bytes, got %d", p.retainedSize.Load())
	}
}
