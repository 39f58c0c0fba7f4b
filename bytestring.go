// bytestring.go: immutable, content-hashable byte sequence
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ByteString is an immutable, content-equal byte sequence used as the
// canonical form for patterns, keys, and persisted snapshots. Unlike a
// Buffer, a ByteString has no read/write cursor: it is a value, not a
// queue. Conversions to and from a Buffer copy by value; ByteString
// never shares a caller-supplied array unless constructed by Buffer's
// own Snapshot/Copy machinery.
type ByteString []byte

// NewByteString copies p into a new, independently-owned ByteString.
func NewByteString(p []byte) ByteString {
	out := make([]byte, len(p))
	copy(out, p)
	return ByteString(out)
}

// ByteStringFromString copies s's bytes into a new ByteString.
func ByteStringFromString(s string) ByteString { return ByteString(s) }

// String returns the UTF-8 decoding of the byte string.
func (bs ByteString) String() string { return string(bs) }

// Equal reports content equality with other.
func (bs ByteString) Equal(other ByteString) bool {
	if len(bs) != len(other) {
		return false
	}
	for i := range bs {
		if bs[i] != other[i] {
			return false
		}
	}
	return true
}

// HashCode returns the 64-bit xxhash content hash, recomputed on every
// call. ByteString is a plain slice rather than a struct, so there is
// no per-instance field to memoize into; an earlier revision cached
// digests in a process-wide map keyed by content, but that retained
// every distinct ByteString a long-running process ever hashed
// forever, which is a leak a general-purpose toolkit shouldn't impose
// on its caller. Two equal ByteStrings always return the same
// HashCode.
func (bs ByteString) HashCode() uint64 {
	return xxhash.Sum64(bs)
}

// Base64 returns the standard base64 encoding of the byte string.
func (bs ByteString) Base64() string { return base64.StdEncoding.EncodeToString(bs) }

// Hex returns the lowercase hex encoding of the byte string.
func (bs ByteString) Hex() string { return hex.EncodeToString(bs) }

// DecodeBase64 decodes standard base64 text into a ByteString.
func DecodeBase64(s string) (ByteString, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &ArgumentError{Op: "DecodeBase64", Msg: err.Error()}
	}
	return ByteString(b), nil
}

// DecodeHex decodes hex text into a ByteString.
func DecodeHex(s string) (ByteString, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &ArgumentError{Op: "DecodeHex", Msg: err.Error()}
	}
	return ByteString(b), nil
}
