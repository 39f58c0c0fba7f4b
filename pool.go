// pool.go: thread-local-style free list of segments
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

import (
	"sync"
	"sync/atomic"
	"time"

	timecache "github.com/agilira/go-timecache"
)

// defaultPoolByteBound is the default upper bound, in bytes, on
// segments a SegmentPool retains. Roughly 64 KiB per goroutine's share
// of the pool, matching the design notes' recommendation.
const defaultPoolByteBound = 64 * 1024

// SegmentPool is a free list of released segments plus a configurable
// byte bound on what it retains. It is backed by sync.Pool, which in
// Go's runtime is itself a per-P (effectively per-thread) free list —
// the direct idiomatic-Go translation of the "thread-local free list"
// the design calls for, in the same spirit as the teacher's
// SafeBufferPool and bufferManager: a bounded pool of reusable byte
// pages rather than a bare sync.Pool with no cap.
type SegmentPool struct {
	raw sync.Pool

	byteBound    int64
	retainedSize atomic.Int64

	clock     *timecache.TimeCache
	clockOnce sync.Once

	takeCount    atomic.Uint64
	recycleCount atomic.Uint64
	lastTakeUnix atomic.Int64
}

// DefaultPool is the package-level pool used by Buffer when no explicit
// pool is supplied, sized at defaultPoolByteBound.
var DefaultPool = NewSegmentPool(defaultPoolByteBound)

// NewSegmentPool creates a pool that retains at most byteBound bytes of
// segment backing storage. A non-positive byteBound disables retention:
// every recycle drops its segment for the runtime to reclaim.
func NewSegmentPool(byteBound int64) *SegmentPool {
	p := &SegmentPool{byteBound: byteBound}
	p.raw.New = func() any {
		return &segment{data: make([]byte, segmentSize)}
	}
	return p
}

func (p *SegmentPool) ensureClock() *timecache.TimeCache {
	p.clockOnce.Do(func() {
		p.clock = timecache.NewWithResolution(time.Millisecond)
	})
	return p.clock
}

// take returns a segment with empty content, full writable capacity,
// owner=true, shared=false, and no ring links.
func (p *SegmentPool) take() *segment {
	s := p.raw.Get().(*segment)
	s.pos, s.limit = 0, 0
	s.owner, s.shared = true, false
	s.prev, s.next = nil, nil

	p.takeCount.Add(1)
	p.lastTakeUnix.Store(p.ensureClock().CachedTime().UnixNano())
	p.releaseRetained(segmentSize)

	return s
}

// releaseRetained decrements the retained-byte counter, clamped at
// zero. It approximates "bytes currently idle in the free list" well
// enough to bound growth without sync.Pool telling us whether Get
// served a pooled segment or called New.
func (p *SegmentPool) releaseRetained(n int64) {
	for {
		cur := p.retainedSize.Load()
		next := cur - n
		if next < 0 {
			next = 0
		}
		if p.retainedSize.CompareAndSwap(cur, next) {
			return
		}
	}
}

// recycle returns s to the pool if it is unlinked, owns its data, and
// the pool has room under its byte bound. Otherwise s and its backing
// array are dropped for the garbage collector. s must already be
// unlinked from any ring.
func (p *SegmentPool) recycle(s *segment) {
	p.recycleCount.Add(1)

	if !s.owner || s.shared {
		return
	}

	if p.byteBound <= 0 {
		return
	}
	if p.retainedSize.Add(segmentSize) > p.byteBound {
		p.retainedSize.Add(-segmentSize)
		return
	}

	s.pos, s.limit = 0, 0
	s.prev, s.next = nil, nil
	p.raw.Put(s)
}

// Stats reports lightweight pool diagnostics: how many segments have
// been taken and recycled over the pool's lifetime, and the cached
// timestamp (millisecond resolution) of the most recent take. Intended
// for instrumentation, not for control flow.
type Stats struct {
	Taken, Recycled uint64
	LastTake        time.Time
}

// Stats returns a snapshot of the pool's lifetime counters.
func (p *SegmentPool) Stats() Stats {
	return Stats{
		Taken:    p.takeCount.Load(),
		Recycled: p.recycleCount.Load(),
		LastTake: time.Unix(0, p.lastTakeUnix.Load()),
	}
}

// Close stops the pool's cached clock. Safe to call on a pool that was
// never used to take a segment.
func (p *SegmentPool) Close() {
	if p.clock != nil {
		p.clock.Stop()
	}
}
