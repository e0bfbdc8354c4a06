// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package kem

import "crypto/ecdh"

// nistGroup implements the DHKEM group interface over a NIST prime
// curve via the standard library's crypto/ecdh, which already rejects
// out-of-range scalars and non-curve points the way DeriveKeyPair's
// rejection-sampling loop needs.
type nistGroup struct {
	curve   ecdh.Curve
	skSize  int
	bitmask byte
}

func newP256Group() group { return &nistGroup{curve: ecdh.P256(), skSize: 32, bitmask: 0xff} }
func newP384Group() group { return &nistGroup{curve: ecdh.P384(), skSize: 48, bitmask: 0xff} }
func newP521Group() group { return &nistGroup{curve: ecdh.P521(), skSize: 66, bitmask: 0x01} }

func (g *nistGroup) publicKeySize() int  { return 1 + 2*g.skSize }
func (g *nistGroup) privateKeySize() int { return g.skSize }

func (g *nistGroup) generateKeyPair() (any, any, error) {
	sk, err := g.curve.GenerateKey(csprng)
	if err != nil {
		return nil, nil, err
	}
	return sk, sk.PublicKey(), nil
}

// deriveKeyPair implements RFC 9180 Appendix A's generic rejection
// sampling: expand a candidate scalar, mask its excess high bits, and
// retry until crypto/ecdh accepts it as in [1, order-1].
func (g *nistGroup) deriveKeyPair(expand expandFunc) (any, any, error) {
	for counter := 0; counter <= 255; counter++ {
		candidate, err := expand("candidate", []byte{byte(counter)}, g.skSize)
		if err != nil {
			return nil, nil, err
		}
		candidate[0] &= g.bitmask
		sk, err := g.curve.NewPrivateKey(candidate)
		if err != nil {
			continue
		}
		return sk, sk.PublicKey(), nil
	}
	return nil, nil, ErrDeriveKeyPairFailed
}

func (g *nistGroup) publicKeyFromPrivate(sk any) any {
	return sk.(*ecdh.PrivateKey).PublicKey()
}

func (g *nistGroup) dh(sk, pk any) ([]byte, error) {
	shared, err := sk.(*ecdh.PrivateKey).ECDH(pk.(*ecdh.PublicKey))
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}
	return shared, nil
}

func (g *nistGroup) serializePublicKey(pk any) []byte {
	return pk.(*ecdh.PublicKey).Bytes()
}

func (g *nistGroup) serializePrivateKey(sk any) []byte {
	return sk.(*ecdh.PrivateKey).Bytes()
}

func (g *nistGroup) deserializePublicKey(enc []byte) (any, error) {
	pk, err := g.curve.NewPublicKey(enc)
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}
	return pk, nil
}

func (g *nistGroup) deserializePrivateKey(enc []byte) (any, error) {
	sk, err := g.curve.NewPrivateKey(enc)
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}
	return sk, nil
}
