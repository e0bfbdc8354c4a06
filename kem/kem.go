// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package kem defines the key-encapsulation primitive contract consumed
// by the HPKE key schedule, and the shared encapsulation/decapsulation
// state every concrete group implementation (DHKEM over X25519, X448,
// or a NIST curve) satisfies.
package kem

import (
	"errors"

	"github.com/go-hpke/hpke/kdf"
)

// ID identifies a KEM algorithm from the HPKE IANA registry.
type ID uint16

// Recognized KEM identifiers.
const (
	DHKEMP256HKDFSHA256   ID = 0x0010
	DHKEMP384HKDFSHA384   ID = 0x0011
	DHKEMP521HKDFSHA512   ID = 0x0012
	DHKEMX25519HKDFSHA256 ID = 0x0020
	DHKEMX448HKDFSHA512   ID = 0x0021
)

// ErrUnsupportedAlgorithm is returned by New when given an ID outside
// the recognized enumeration.
var ErrUnsupportedAlgorithm = errors.New("kem: unsupported algorithm identifier")

// ErrInvalidKeyMaterial is returned when a serialized key does not
// decode to a valid point or scalar for its group, including points
// not on the curve and the small-order X25519/X448 exceptional values.
var ErrInvalidKeyMaterial = errors.New("kem: invalid key material")

// ErrDeriveKeyPairFailed is returned by DeriveKeyPair if it exhausts
// its internal retry budget without producing a valid scalar. This
// should not happen for any conforming input.
var ErrDeriveKeyPairFailed = errors.New("kem: derive key pair exhausted retry budget")

// PublicKey is an encapsulation-side key: the recipient's public key in
// Encap, or the sender's authentication public key in AuthDecap.
type PublicKey interface {
	// Bytes returns the fixed-length SerializePublicKey encoding.
	Bytes() []byte
}

// PrivateKey is a decapsulation-side key.
type PrivateKey interface {
	// Bytes returns the fixed-length SerializePrivateKey encoding.
	Bytes() []byte

	// Public returns the corresponding public key.
	Public() PublicKey
}

// Scheme is a suite-fixed key encapsulation mechanism, in the sense
// HPKE uses the term: encapsulation additionally derives shared secret
// bytes rather than just wrapping a symmetric key.
type Scheme interface {
	// ID returns the scheme's IANA identifier.
	ID() ID

	// PublicKeySize returns the length, in bytes, of a serialized
	// public key (Npk).
	PublicKeySize() int

	// PrivateKeySize returns the length, in bytes, of a serialized
	// private key (Nsk).
	PrivateKeySize() int

	// EncSize returns the length, in bytes, of an encapsulated key
	// (Nenc).
	EncSize() int

	// SecretSize returns the length, in bytes, of a derived shared
	// secret (Nsecret).
	SecretSize() int

	// GenerateKeyPair returns a fresh, uniformly random key pair.
	GenerateKeyPair() (PrivateKey, PublicKey, error)

	// DeriveKeyPair deterministically derives a key pair from seed
	// material, as used by test vectors and by callers wishing to
	// derive keys from another secret.
	DeriveKeyPair(ikm []byte) (PrivateKey, PublicKey, error)

	// SerializePublicKey encodes pk to its fixed-length representation.
	SerializePublicKey(pk PublicKey) []byte

	// DeserializePublicKey decodes a fixed-length public key,
	// rejecting invalid points with ErrInvalidKeyMaterial.
	DeserializePublicKey(enc []byte) (PublicKey, error)

	// SerializePrivateKey encodes sk to its fixed-length
	// representation.
	SerializePrivateKey(sk PrivateKey) []byte

	// DeserializePrivateKey decodes a fixed-length private key.
	DeserializePrivateKey(enc []byte) (PrivateKey, error)

	// Encap generates an ephemeral key pair and returns the shared
	// secret it establishes with pkR, together with its encapsulation.
	Encap(pkR PublicKey) (sharedSecret, enc []byte, err error)

	// Decap recovers the shared secret Encap established, given the
	// encapsulation and the recipient's private key.
	Decap(enc []byte, skR PrivateKey) (sharedSecret []byte, err error)

	// AuthEncap is Encap additionally binding the sender's identity
	// key skS, for the auth and auth_psk HPKE modes.
	AuthEncap(pkR PublicKey, skS PrivateKey) (sharedSecret, enc []byte, err error)

	// AuthDecap is Decap additionally verifying the binding to the
	// sender's public key pkS.
	AuthDecap(enc []byte, skR PrivateKey, pkS PublicKey) (sharedSecret []byte, err error)
}

// New constructs the KEM primitive for id, failing with
// ErrUnsupportedAlgorithm if id is not recognized.
func New(id ID) (Scheme, error) {
	switch id {
	case DHKEMP256HKDFSHA256:
		return newDHKEM(id, newP256Group(), kdf.HKDFSHA256, 32)
	case DHKEMP384HKDFSHA384:
		return newDHKEM(id, newP384Group(), kdf.HKDFSHA384, 48)
	case DHKEMP521HKDFSHA512:
		return newDHKEM(id, newP521Group(), kdf.HKDFSHA512, 64)
	case DHKEMX25519HKDFSHA256:
		return newDHKEM(id, newX25519Group(), kdf.HKDFSHA256, 32)
	case DHKEMX448HKDFSHA512:
		return newDHKEM(id, newX448Group(), kdf.HKDFSHA512, 64)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
