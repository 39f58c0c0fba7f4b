// buffer.go: FIFO byte queue backed by a ring of segments
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// Buffer is a FIFO byte queue: a circular doubly-linked list of
// segments that implements both Source and Sink. A Buffer is not safe
// for concurrent use; at most one goroutine may hold it at any instant.
//
// The zero value is an empty, ready-to-use Buffer.
type Buffer struct {
	head      *segment
	byteCount int64
	pool      *SegmentPool
}

// NewBuffer returns an empty Buffer drawing segments from pool. A nil
// pool falls back to DefaultPool.
func NewBuffer(pool *SegmentPool) *Buffer {
	return &Buffer{pool: pool}
}

func (b *Buffer) pl() *SegmentPool {
	if b.pool == nil {
		return DefaultPool
	}
	return b.pool
}

// Len returns the number of readable bytes currently queued.
func (b *Buffer) Len() int64 { return b.byteCount }

// IsEmpty reports whether the buffer holds no readable bytes.
func (b *Buffer) IsEmpty() bool { return b.byteCount == 0 }

// Clear discards all readable bytes, recycling every segment. Clear is
// idempotent: calling it on an already-empty buffer is a no-op.
func (b *Buffer) Clear() {
	for b.head != nil {
		s := b.head
		popNode(&b.head, s)
		b.pl().recycle(s)
	}
	b.byteCount = 0
}

// tail returns the current tail segment (the one bytes are appended
// to), or nil if the buffer is empty.
func (b *Buffer) tail() *segment {
	if b.head == nil {
		return nil
	}
	return b.head.prev
}

// writableTail returns an unshared tail segment with at least
// minCapacity free bytes, allocating and linking a fresh one from the pool if needed.
func (b *Buffer) writableTail(minCapacity int) *segment {
	t := b.tail()
	if t != nil && !t.shared && t.writable() >= minCapacity {
		return t
	}
	s := b.pl().take()
	b.head = pushBack(b.head, s)
	return s
}

// appendSegment links s (already populated with data) at the tail.
func (b *Buffer) appendSegment(s *segment) {
	b.head = pushBack(b.head, s)
	b.byteCount += int64(s.size())
}

// dropHeadIfEmpty recycles the head segment if it has been fully
// consumed, advancing to the next segment.
func (b *Buffer) dropHeadIfEmpty() {
	if b.head != nil && b.head.size() == 0 {
		s := b.head
		popNode(&b.head, s)
		b.pl().recycle(s)
	}
}

// Close is a no-op: a Buffer does not own an external resource. It
// exists so Buffer satisfies io.Closer-shaped interfaces used
// elsewhere in the package without special-casing Buffer itself.
func (b *Buffer) Close() error { return nil }
