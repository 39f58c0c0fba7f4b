// buffer_inspect.go: non-consuming Buffer operations
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// Get returns the byte at logical offset i without consuming it.
// O(segment count) in the worst case.
func (b *Buffer) Get(i int64) (byte, error) {
	if i < 0 || i >= b.byteCount {
		return 0, &ArgumentError{Op: "Get", Msg: "index out of range"}
	}
	s := b.head
	off := i
	for {
		n := int64(s.size())
		if off < n {
			return s.data[s.pos+int(off)], nil
		}
		off -= n
		s = s.next
	}
}

// StartsWith reports whether the buffer is non-empty and its first
// byte equals c.
func (b *Buffer) StartsWith(c byte) bool {
	return b.byteCount > 0 && b.head.data[b.head.pos] == c
}

// IndexOf returns the logical offset of the first occurrence of c in
// [startIndex, endIndex), or -1 if none is found.
func (b *Buffer) IndexOf(c byte, startIndex, endIndex int64) int64 {
	if startIndex < 0 {
		startIndex = 0
	}
	if endIndex > b.byteCount {
		endIndex = b.byteCount
	}
	if startIndex >= endIndex {
		return -1
	}

	s := b.head
	var base int64
	for s != nil {
		n := int64(s.size())
		segStart, segEnd := base, base+n
		if segEnd > startIndex {
			lo := segStart
			if startIndex > lo {
				lo = startIndex
			}
			hi := segEnd
			if endIndex < hi {
				hi = endIndex
			}
			for off := lo; off < hi; off++ {
				if s.data[s.pos+int(off-segStart)] == c {
					return off
				}
			}
		}
		base = segEnd
		if base >= endIndex {
			break
		}
		s = s.next
		if s == b.head {
			break
		}
	}
	return -1
}

// IndexOfByteString returns the logical offset of the first occurrence
// of needle at or after startIndex, or -1 if none is found. The search
// is the naive O(n*m) scan; it never copies buffer contents to do it.
func (b *Buffer) IndexOfByteString(needle ByteString, startIndex int64) int64 {
	if len(needle) == 0 {
		if startIndex < 0 {
			startIndex = 0
		}
		if startIndex > b.byteCount {
			return -1
		}
		return startIndex
	}

	first := needle[0]
	limit := b.byteCount - int64(len(needle))
	for i := b.IndexOf(first, startIndex, b.byteCount); i != -1 && i <= limit; {
		match := true
		for j := 1; j < len(needle); j++ {
			c, err := b.Get(i + int64(j))
			if err != nil || c != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
		i = b.IndexOf(first, i+1, b.byteCount)
	}
	return -1
}

// Copy returns a deep-logical, shallow-physical clone of b: every
// segment is share()d, so no bytes are copied, but the clone's head and
// byteCount are independent of b's. Mutating either buffer
// copy-on-writes or compacts as needed without affecting the other.
func (b *Buffer) Copy() *Buffer {
	out := &Buffer{pool: b.pool, byteCount: b.byteCount}
	if b.head == nil {
		return out
	}
	s := b.head
	for {
		out.head = pushBack(out.head, s.share())
		s = s.next
		if s == b.head {
			break
		}
	}
	return out
}

// Clone is an alias for Copy, matching the name used by the Kotlin
// original this package's semantics are ported from.
func (b *Buffer) Clone() *Buffer { return b.Copy() }

// CopyTo copies the byte range [startIndex, endIndex) into sink,
// sharing segments where possible instead of copying bytes.
func (b *Buffer) CopyTo(sink *Buffer, startIndex, endIndex int64) error {
	if startIndex < 0 || endIndex > b.byteCount || startIndex > endIndex {
		return &ArgumentError{Op: "CopyTo", Msg: "range out of bounds"}
	}
	if startIndex == endIndex {
		return nil
	}

	s := b.head
	var base int64
	for base+int64(s.size()) <= startIndex {
		base += int64(s.size())
		s = s.next
	}

	remaining := endIndex - startIndex
	offsetInSeg := int(startIndex - base)
	for remaining > 0 {
		avail := int64(s.size() - offsetInSeg)
		n := avail
		if remaining < n {
			n = remaining
		}

		view := s.share()
		view.pos += offsetInSeg
		view.limit = view.pos + int(n)
		sink.appendSegment(view)

		remaining -= n
		offsetInSeg = 0
		s = s.next
	}
	return nil
}

// Snapshot returns the buffer's current contents as an immutable
// ByteString without consuming them. It reads a Copy of b, so the bytes
// are copied once into the returned ByteString; the result does not
// share b's segments.
func (b *Buffer) Snapshot() ByteString {
	bs, _ := b.Copy().ReadByteArray()
	return ByteString(bs)
}

// Peek returns a Source reading a snapshot of b at the moment of the
// call. Writes to b after Peek returns are not visible through the
// peek source, and reads through the peek source are not visible to b;
// both are achieved by sharing segments rather than copying.
func (b *Buffer) Peek() Source {
	return &peekSource{snapshot: b.Copy()}
}

type peekSource struct {
	snapshot *Buffer
	closed   bool
}

func (p *peekSource) ReadAtMostTo(sink *Buffer, max int64) (int64, error) {
	if p.closed {
		return 0, ErrClosed
	}
	return p.snapshot.ReadAtMostTo(sink, max)
}

func (p *peekSource) Close() error {
	p.closed = true
	return nil
}
