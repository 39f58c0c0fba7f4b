// hash.go: pass-through digest transformation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"

	"github.com/agilira/octo"
)

// HashAlgo selects the digest HashTransform accumulates.
type HashAlgo int

const (
	// XXHash64 is a fast, non-cryptographic running digest.
	XXHash64 HashAlgo = iota
	// SHA256 is a cryptographic digest, for callers that need
	// collision resistance rather than raw speed.
	SHA256
)

// HashTransform is a Transformation that passes bytes through
// unmodified while accumulating a running digest over everything seen.
// It never buffers: every byte offered is both hashed and forwarded
// within the same TransformAtMostTo call.
type HashTransform struct {
	algo HashAlgo
	xx   *xxhash.Digest
	sha  hash.Hash
}

// NewHashTransform returns a HashTransform computing algo over the
// bytes it passes through.
func NewHashTransform(algo HashAlgo) *HashTransform {
	t := &HashTransform{algo: algo}
	switch algo {
	case SHA256:
		t.sha = sha256.New()
	default:
		t.xx = xxhash.New()
	}
	return t
}

// TransformAtMostTo hashes and forwards up to byteCount bytes.
func (t *HashTransform) TransformAtMostTo(source, sink *octo.Buffer, byteCount int64) (int64, error) {
	n := byteCount
	if source.Len() < n {
		n = source.Len()
	}
	if n == 0 {
		return 0, nil
	}

	data, err := source.ReadByteArrayN(int(n))
	if err != nil {
		return 0, err
	}
	if t.sha != nil {
		t.sha.Write(data)
	} else {
		t.xx.Write(data)
	}
	if _, err := sink.WriteByteArray(data); err != nil {
		return 0, err
	}
	return n, nil
}

// Finish is a no-op: the digest is read with Sum, not appended to the
// stream.
func (t *HashTransform) Finish(sink *octo.Buffer) error { return nil }

// Close is a no-op: neither xxhash.Digest nor crypto/sha256's hash.Hash
// holds releasable resources.
func (t *HashTransform) Close() error { return nil }

// Sum returns the digest of everything transformed so far. For
// XXHash64 this is the 8-byte big-endian encoding of Digest.Sum64; for
// SHA256 it is the 32-byte digest.
func (t *HashTransform) Sum() octo.ByteString {
	if t.sha != nil {
		return octo.ByteString(t.sha.Sum(nil))
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], t.xx.Sum64())
	return octo.ByteString(buf[:])
}
