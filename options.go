// options.go: compiled trie for matching a byte-string prefix
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

import "sort"

// Options is a compiled trie over a fixed set of byte-string
// candidates, usable with Buffer.Select to match the head of a buffer
// against all of them in one pass.
type Options struct {
	candidates []ByteString
	root       *optionsNode
}

// optionsNode is a trie node: either an internal branch keyed by the
// next byte, or a leaf naming the matched candidate's index.
type optionsNode struct {
	children map[byte]*optionsNode
	index    int // -1 unless this node completes a candidate
}

func newOptionsNode() *optionsNode {
	return &optionsNode{children: make(map[byte]*optionsNode), index: -1}
}

// NewOptions compiles candidates into a trie. Construction is
// O(total bytes across all candidates).
func NewOptions(candidates ...ByteString) *Options {
	root := newOptionsNode()
	for i, c := range candidates {
		node := root
		for _, b := range c {
			next, ok := node.children[b]
			if !ok {
				next = newOptionsNode()
				node.children[b] = next
			}
			node = next
		}
		node.index = i
	}
	return &Options{candidates: append([]ByteString(nil), candidates...), root: root}
}

// NewOptionsFromStrings is a convenience constructor over plain
// strings.
func NewOptionsFromStrings(candidates ...string) *Options {
	bss := make([]ByteString, len(candidates))
	for i, c := range candidates {
		bss[i] = ByteString(c)
	}
	return NewOptions(bss...)
}

// Select examines the head of b against opts, walking the trie as far
// as possible and returning the longest candidate matched along the
// way (consuming its bytes), or -1 (consuming nothing) if no candidate
// matches at all. When one candidate is a prefix of another (e.g. "id"
// vs "idaa"), the walk keeps descending past the shorter match in case
// a longer one also matches, but always remembers the last complete
// match seen so it can fall back to it if the longer path turns out
// not to pan out. Selection is O(length of the matched candidate).
func (b *Buffer) Select(opts *Options) int {
	node := opts.root
	consumed := int64(0)

	bestIndex := -1
	bestConsumed := int64(0)

	for {
		if node.index != -1 {
			bestIndex = node.index
			bestConsumed = consumed
		}

		c, err := b.Get(consumed)
		if err != nil {
			break
		}
		next, ok := node.children[c]
		if !ok {
			break
		}
		node = next
		consumed++
	}

	if bestIndex == -1 {
		return -1
	}
	b.Skip(bestConsumed)
	return bestIndex
}

// Candidates returns the compiled candidate list in index order.
func (o *Options) Candidates() []ByteString {
	return append([]ByteString(nil), o.candidates...)
}

// sortedKeys returns the node's child branch bytes in ascending order,
// giving a deterministic iteration order over the trie's branches.
func (o *optionsNode) sortedKeys() []byte {
	keys := make([]byte, 0, len(o.children))
	for k := range o.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
