// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package kem

import (
	"io"

	"github.com/cloudflare/circl/dh/x448"
)

// x448Group implements the DHKEM group interface over Curve448, using
// circl's dh/x448 package for the scalar multiplication circl's own
// KEM schemes rely on elsewhere in this ecosystem.
type x448Group struct{}

func newX448Group() group { return x448Group{} }

func (x448Group) publicKeySize() int  { return x448.Size }
func (x448Group) privateKeySize() int { return x448.Size }

func (g x448Group) generateKeyPair() (any, any, error) {
	var sk x448.Key
	if _, err := io.ReadFull(csprng, sk[:]); err != nil {
		return nil, nil, err
	}
	var pk x448.Key
	x448.KeyGen(&pk, &sk)
	return sk, pk, nil
}

func (g x448Group) deriveKeyPair(expand expandFunc) (any, any, error) {
	raw, err := expand("sk", nil, x448.Size)
	if err != nil {
		return nil, nil, err
	}
	var sk x448.Key
	copy(sk[:], raw)
	var pk x448.Key
	x448.KeyGen(&pk, &sk)
	return sk, pk, nil
}

func (g x448Group) publicKeyFromPrivate(sk any) any {
	skKey := sk.(x448.Key)
	var pk x448.Key
	x448.KeyGen(&pk, &skKey)
	return pk
}

func (g x448Group) dh(sk, pk any) ([]byte, error) {
	skKey := sk.(x448.Key)
	pkKey := pk.(x448.Key)
	var shared x448.Key
	if !x448.Shared(&shared, &skKey, &pkKey) {
		return nil, ErrInvalidKeyMaterial
	}
	return shared[:], nil
}

func (g x448Group) serializePublicKey(pk any) []byte {
	key := pk.(x448.Key)
	return append([]byte{}, key[:]...)
}

func (g x448Group) serializePrivateKey(sk any) []byte {
	key := sk.(x448.Key)
	return append([]byte{}, key[:]...)
}

func (g x448Group) deserializePublicKey(enc []byte) (any, error) {
	if len(enc) != x448.Size {
		return nil, ErrInvalidKeyMaterial
	}
	var key x448.Key
	copy(key[:], enc)
	return key, nil
}

func (g x448Group) deserializePrivateKey(enc []byte) (any, error) {
	if len(enc) != x448.Size {
		return nil, ErrInvalidKeyMaterial
	}
	var key x448.Key
	copy(key[:], enc)
	return key, nil
}
