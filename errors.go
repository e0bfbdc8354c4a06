// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package hpke

import (
	"errors"

	"github.com/go-hpke/hpke/kdf"
	"github.com/go-hpke/hpke/kem"
)

// Sentinel errors returned by the package. Callers should use errors.Is
// to test for a specific kind rather than comparing the wrapped error
// returned from a public function directly.
var (
	// ErrUnsupportedAlgorithm is returned by NewSuite when given an
	// identifier outside the recognized KEM, KDF, or AEAD enumerations.
	ErrUnsupportedAlgorithm = errors.New("hpke: unsupported algorithm identifier")

	// ErrNotImplemented is returned when a KEM capability is absent for the
	// requested operation, such as auth_encap on a KEM that does not
	// support authenticated encapsulation, or serialize_private on a KEM
	// that defines no canonical private key encoding.
	ErrNotImplemented = errors.New("hpke: capability not implemented by this primitive")

	// ErrInvalidPSKInputs is returned by the key schedule when the
	// (psk, psk_id, mode) triple is inconsistent: psk and psk_id must
	// either both be empty or both be non-empty, and a PSK is required
	// for psk/auth_psk mode and forbidden for base/auth mode.
	ErrInvalidPSKInputs = errors.New("hpke: invalid psk inputs for mode")

	// ErrSequenceOverflow is returned by Seal or Open when the context's
	// sequence counter has exhausted its range. No ciphertext or
	// plaintext is returned in this case.
	ErrSequenceOverflow = errors.New("hpke: message sequence number overflowed")

	// ErrOutputTooLong is returned by the KDF's expand operation when the
	// requested output length exceeds 255 times the KDF's hash size.
	ErrOutputTooLong = kdf.ErrOutputTooLong

	// ErrInvalidKeyMaterial is returned when a serialized public or
	// private key cannot be parsed into a valid point or scalar for the
	// KEM's group.
	ErrInvalidKeyMaterial = kem.ErrInvalidKeyMaterial

	// ErrOpenFailed is the negative result of an AEAD open, returned
	// instead of a plaintext when tag verification fails. It is not part
	// of the closed error taxonomy of section 7; it exists only so that
	// callers working in an idiomatic (value, error) style can detect the
	// failure without a sentinel channel distinct from Go's error type.
	ErrOpenFailed = errors.New("hpke: aead authentication failed")
)
