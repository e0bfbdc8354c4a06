// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfScheme implements Scheme with HKDF over a fixed SHA-2 hash, the
// same construction nyquist.SymmetricState uses to mix its chaining key.
type hkdfScheme struct {
	id       ID
	newHash  func() hash.Hash
	hashSize int
}

func newHKDF(id ID) Scheme {
	switch id {
	case HKDFSHA256:
		return &hkdfScheme{id: id, newHash: sha256.New, hashSize: sha256.Size}
	case HKDFSHA384:
		return &hkdfScheme{id: id, newHash: sha512.New384, hashSize: sha512.Size384}
	case HKDFSHA512:
		return &hkdfScheme{id: id, newHash: sha512.New, hashSize: sha512.Size}
	default:
		panic("kdf: newHKDF given unrecognized id")
	}
}

func (s *hkdfScheme) ID() ID        { return s.id }
func (s *hkdfScheme) HashSize() int { return s.hashSize }

// Extract implements RFC 5869 HKDF-Extract: PRK = HMAC-Hash(salt, IKM).
// An empty salt is replaced with HashSize zero bytes by hkdf.Extract
// itself, per RFC 5869 §2.2.
func (s *hkdfScheme) Extract(salt, ikm []byte) []byte {
	if len(salt) == 0 {
		salt = nil
	}
	return hkdf.Extract(s.newHash, ikm, salt)
}

// Expand implements RFC 5869 HKDF-Expand via golang.org/x/crypto/hkdf's
// reader, seeded directly with the already-extracted PRK.
func (s *hkdfScheme) Expand(prk, info []byte, l int) ([]byte, error) {
	if l > 255*s.hashSize {
		return nil, ErrOutputTooLong
	}
	r := hkdf.Expand(s.newHash, prk, info)
	out := make([]byte, l)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
