// segment.go: fixed-capacity byte page with read/write cursors
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// segmentSize is the capacity, in bytes, of a single segment's backing
// array. 8192 balances per-segment overhead against the cost of
// allocating a fresh array for every small write.
const segmentSize = 8192

// shareCopyThreshold is the split() offset below which the prefix is
// copied into a fresh segment rather than shared. This is a performance
// hint only: sharing a large backing array to pin a handful of bytes
// keeps the whole array alive, so small prefixes are copied instead.
// Semantics are identical either way.
const shareCopyThreshold = 1024

// segment is a fixed-capacity contiguous byte page with a read cursor
// (pos), a write cursor (limit), and sharing/ownership flags. Segments
// are linked into a circular doubly-linked ring by a Buffer; the ring
// has no sentinel node, so an empty Buffer simply holds a nil head.
type segment struct {
	data  []byte
	pos   int
	limit int

	// shared is true when data is referenced by more than one segment.
	// A shared segment's [pos, limit) bytes must not be written to in
	// place; a writer must unshare by copying into a fresh segment
	// first.
	shared bool

	// owner is true when this segment may recycle data back to the
	// pool on release. share() clears owner on the new view but leaves
	// it set on the segment that produced it, so recycling rights never
	// become ambiguous between the two.
	owner bool

	prev, next *segment
}

// size returns the number of unread bytes in the segment.
func (s *segment) size() int { return s.limit - s.pos }

// writable returns the contiguous free tail capacity.
func (s *segment) writable() int { return segmentSize - s.limit }

// pushFront links s as the new head of the ring rooted at head, i.e.
// immediately before the current head in read order. Returns the new
// head to assign back to the caller's ring pointer.
func pushFront(head, s *segment) *segment {
	if head == nil {
		s.prev, s.next = s, s
		return s
	}
	tail := head.prev
	s.prev, s.next = tail, head
	tail.next, head.prev = s, s
	return s
}

// pushBack links s as the new tail of the ring rooted at head, i.e.
// immediately before head (the ring's tail is always head.prev).
// Returns the head to assign back to the caller's ring pointer (it
// never changes unless the ring was empty).
func pushBack(head, s *segment) *segment {
	if head == nil {
		s.prev, s.next = s, s
		return s
	}
	tail := head.prev
	s.prev, s.next = tail, head
	tail.next, head.prev = s, s
	return head
}

// popNode unlinks s from its ring. headPtr points at the caller's head
// reference and is updated in place: to s.next if s was the head and
// other nodes remain, or to nil if s was the only node.
func popNode(headPtr **segment, s *segment) {
	if s.next == s {
		*headPtr = nil
		s.prev, s.next = nil, nil
		return
	}
	s.prev.next = s.next
	s.next.prev = s.prev
	if *headPtr == s {
		*headPtr = s.next
	}
	s.prev, s.next = nil, nil
}

// share returns a new segment that references the same backing array as
// s over the same [pos, limit) range. Both s and the returned segment
// are marked shared; s retains owner (and therefore recycling rights),
// the new view does not.
func (s *segment) share() *segment {
	s.shared = true
	return &segment{
		data:   s.data,
		pos:    s.pos,
		limit:  s.limit,
		shared: true,
		owner:  false,
	}
}

// split divides s into a prefix covering [pos, pos+offset) and a suffix
// covering [pos+offset, limit). Both results share s's backing array
// unless offset is small enough to trip shareCopyThreshold, in which
// case the prefix is a fresh copy instead (a performance hint; callers
// must not rely on which form was chosen). pool is the segment's owning
// pool, used to source that fresh copy so a split never pulls from some
// other Buffer's pool.
func (s *segment) split(offset int, pool *SegmentPool) (prefix, suffix *segment) {
	if offset <= 0 || offset > s.size() {
		panic("octo: split offset out of range")
	}

	if offset < shareCopyThreshold {
		prefix = pool.take()
		prefix.limit = copy(prefix.data, s.data[s.pos:s.pos+offset])
		s.pos += offset
		return prefix, s
	}

	prefix = s.share()
	prefix.limit = prefix.pos + offset
	s.pos += offset
	return prefix, s
}

// compact merges s into prev when prev has room and is not itself
// shared, returning true if the merge happened. The caller is
// responsible for unlinking and recycling s after a successful compact.
func (s *segment) compact(prev *segment) bool {
	if prev.shared || prev.writable() < s.size() {
		return false
	}
	prev.limit += copy(prev.data[prev.limit:], s.data[s.pos:s.limit])
	return true
}
