// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package kem

import (
	"io"

	"golang.org/x/crypto/curve25519"
)

const x25519Size = 32

// x25519Group implements the DHKEM group interface over Curve25519,
// the same curve the ecdh package in this ecosystem exercises against
// golang.org/x/crypto/curve25519 in its own tests.
type x25519Group struct{}

func newX25519Group() group { return x25519Group{} }

func (x25519Group) publicKeySize() int  { return x25519Size }
func (x25519Group) privateKeySize() int { return x25519Size }

func (g x25519Group) generateKeyPair() (any, any, error) {
	sk := make([]byte, x25519Size)
	if _, err := io.ReadFull(csprng, sk); err != nil {
		return nil, nil, err
	}
	pk, err := curve25519.X25519(sk, curve25519.Basepoint)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

func (g x25519Group) deriveKeyPair(expand expandFunc) (any, any, error) {
	sk, err := expand("sk", nil, x25519Size)
	if err != nil {
		return nil, nil, err
	}
	pk, err := curve25519.X25519(sk, curve25519.Basepoint)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

func (g x25519Group) publicKeyFromPrivate(sk any) any {
	pk, err := curve25519.X25519(sk.([]byte), curve25519.Basepoint)
	if err != nil {
		panic(err)
	}
	return pk
}

func (g x25519Group) dh(sk, pk any) ([]byte, error) {
	shared, err := curve25519.X25519(sk.([]byte), pk.([]byte))
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}
	return shared, nil
}

func (g x25519Group) serializePublicKey(pk any) []byte  { return append([]byte{}, pk.([]byte)...) }
func (g x25519Group) serializePrivateKey(sk any) []byte { return append([]byte{}, sk.([]byte)...) }

func (g x25519Group) deserializePublicKey(enc []byte) (any, error) {
	if len(enc) != x25519Size {
		return nil, ErrInvalidKeyMaterial
	}
	return append([]byte{}, enc...), nil
}

func (g x25519Group) deserializePrivateKey(enc []byte) (any, error) {
	if len(enc) != x25519Size {
		return nil, ErrInvalidKeyMaterial
	}
	return append([]byte{}, enc...), nil
}
