// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package aead defines the authenticated-encryption primitive contract
// consumed by the HPKE encryption context.
package aead

import "errors"

// ID identifies an AEAD algorithm from the HPKE IANA registry.
type ID uint16

// Recognized AEAD identifiers.
const (
	AES128GCM        ID = 0x0001
	AES256GCM        ID = 0x0002
	ChaCha20Poly1305 ID = 0x0003
	ExportOnly       ID = 0xffff
)

// ErrUnsupportedAlgorithm is returned by New when given an ID outside
// the recognized enumeration.
var ErrUnsupportedAlgorithm = errors.New("aead: unsupported algorithm identifier")

// ErrExportOnly is returned by Seal and Open on the ExportOnly AEAD,
// which provides no confidentiality or integrity and exists solely so
// that a suite can be constructed for its key-export side channel.
var ErrExportOnly = errors.New("aead: suite is export-only, seal/open unavailable")

// ErrOpenFailed is the negative result of Open: authentication failed.
// It is returned in place of a plaintext, never as a panic or a
// distinguishable exception, so that callers can observe it without
// the timing variance of unwinding.
var ErrOpenFailed = errors.New("aead: authentication failed")

// Scheme is a suite-fixed authenticated encryption primitive. Key and
// nonce sizes are properties of the scheme, not of any particular call.
type Scheme interface {
	// ID returns the scheme's IANA identifier.
	ID() ID

	// KeySize returns the required length, in bytes, of keys passed to
	// Seal and Open.
	KeySize() int

	// NonceSize returns the required length, in bytes, of nonces passed
	// to Seal and Open.
	NonceSize() int

	// Overhead returns the number of bytes of authentication tag
	// appended to the ciphertext by Seal.
	Overhead() int

	// Seal encrypts and authenticates pt under key and nonce, binding
	// aad, and returns ciphertext || tag. It is infallible for
	// correctly-sized key and nonce.
	Seal(key, nonce, aad, pt []byte) ([]byte, error)

	// Open authenticates aad and ct under key and nonce and, on success,
	// returns the recovered plaintext. On authentication failure it
	// returns a nil slice and a non-nil error; this is a negative
	// result, not evidence of a malfunctioning primitive.
	Open(key, nonce, aad, ct []byte) ([]byte, error)
}

// New constructs the AEAD primitive for id, failing with
// ErrUnsupportedAlgorithm if id is not recognized.
func New(id ID) (Scheme, error) {
	switch id {
	case AES128GCM:
		return newAESGCM(id, 16)
	case AES256GCM:
		return newAESGCM(id, 32)
	case ChaCha20Poly1305:
		return newChaCha20Poly1305(), nil
	case ExportOnly:
		return newExportOnly(), nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
