// unsafe.go: typed accessors exposing raw segment memory
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// UnsafeReadFromHead invokes f with the head segment's raw slice,
// bounded to its readable range. f must return how many bytes it
// consumed, in [0, len(slice)]; that many bytes are then skipped from
// b. f must not retain the slice beyond the call: the segment may be
// recycled or rewritten the moment UnsafeReadFromHead returns.
func (b *Buffer) UnsafeReadFromHead(f func(data []byte) (consumed int)) error {
	if b.head == nil {
		return ErrEndOfInput
	}
	s := b.head
	slice := s.data[s.pos:s.limit]
	consumed := f(slice)
	if consumed < 0 || consumed > len(slice) {
		return &CapacityError{Op: "UnsafeReadFromHead", Returned: consumed, Min: 0, Max: len(slice)}
	}
	s.pos += consumed
	b.byteCount -= int64(consumed)
	b.dropHeadIfEmpty()
	return nil
}

// UnsafeWriteToTail ensures the tail segment has at least minCapacity
// writable bytes (allocating a fresh one from the pool if necessary),
// then invokes f with that segment's writable slice. The slice's
// length may exceed minCapacity; f must not assume otherwise. f
// returns how many bytes it wrote, in [0, len(slice)].
func (b *Buffer) UnsafeWriteToTail(minCapacity int, f func(data []byte) (written int)) error {
	s := b.writableTail(minCapacity)
	slice := s.data[s.limit:segmentSize]
	written := f(slice)
	if written < 0 || written > len(slice) {
		return &CapacityError{Op: "UnsafeWriteToTail", Returned: written, Min: 0, Max: len(slice)}
	}
	s.limit += written
	b.byteCount += int64(written)
	return nil
}

// SegmentView is a read-only view over one segment's readable bytes,
// handed to the callback passed to UnsafeIterateSegments.
type SegmentView struct {
	Data []byte
}

// UnsafeIterateSegments invokes f once per segment, in head-to-tail
// order, with a read-only view of each segment's readable bytes. f
// must not retain the slice beyond each call.
func (b *Buffer) UnsafeIterateSegments(f func(SegmentView)) {
	if b.head == nil {
		return
	}
	s := b.head
	for {
		f(SegmentView{Data: s.data[s.pos:s.limit]})
		s = s.next
		if s == b.head {
			break
		}
	}
}
