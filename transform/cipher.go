// cipher.go: stream-cipher transformation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20"

	"github.com/agilira/octo"
)

// CipherTransform is a Transformation that XORs its input against a
// ChaCha20 (or XChaCha20, depending on nonce length) keystream,
// pass-through in length: it neither buffers nor authenticates,
// matching a raw stream cipher rather than an AEAD. Applying it twice
// with the same key and nonce recovers the original bytes.
type CipherTransform struct {
	stream cipher.Stream
}

// NewCipherTransform returns a CipherTransform keyed by key (32 bytes)
// and nonce, which must never repeat under the same key. A 12-byte
// nonce selects plain ChaCha20; a 24-byte nonce selects XChaCha20,
// whose larger nonce space is safer under randomly generated nonces.
func NewCipherTransform(key, nonce []byte) (*CipherTransform, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &CipherTransform{stream: c}, nil
}

// TransformAtMostTo XORs up to byteCount bytes of source against the
// keystream and appends the result to sink.
func (t *CipherTransform) TransformAtMostTo(source, sink *octo.Buffer, byteCount int64) (int64, error) {
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
	t.stream.XORKeyStream(data, data)
	if _, err := sink.WriteByteArray(data); err != nil {
		return 0, err
	}
	return n, nil
}

// Finish is a no-op: a stream cipher has no trailer to emit.
func (t *CipherTransform) Finish(sink *octo.Buffer) error { return nil }

// Close is a no-op: chacha20.Cipher holds no releasable resources.
func (t *CipherTransform) Close() error { return nil }
