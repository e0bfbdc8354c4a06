// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package kem

import (
	"crypto/rand"

	"github.com/go-hpke/hpke/kdf"
)

// expandFunc derives l bytes under label and info from the dkp_prk
// already extracted for a DeriveKeyPair call. Each group chooses its
// own label ("sk" for the Montgomery curves, "candidate" for the NIST
// curves' rejection-sampling loop).
type expandFunc func(label string, info []byte, l int) ([]byte, error)

// group is the Diffie-Hellman group underlying a DHKEM construction.
// Keys are passed around as opaque `any` values; each group asserts
// its own concrete key type in every method, the same way a NIKE
// scheme in this ecosystem hides curve-specific point representations
// behind an interface boundary.
type group interface {
	publicKeySize() int
	privateKeySize() int

	generateKeyPair() (sk, pk any, err error)
	deriveKeyPair(expand expandFunc) (sk, pk any, err error)
	publicKeyFromPrivate(sk any) any

	dh(sk, pk any) ([]byte, error)

	serializePublicKey(pk any) []byte
	deserializePublicKey(enc []byte) (any, error)
	serializePrivateKey(sk any) []byte
	deserializePrivateKey(enc []byte) (any, error)
}

// dhkemPublicKey adapts a group's native public key to kem.PublicKey.
type dhkemPublicKey struct {
	raw   any
	group group
}

func (k *dhkemPublicKey) Bytes() []byte { return k.group.serializePublicKey(k.raw) }

// dhkemPrivateKey adapts a group's native private key to kem.PrivateKey.
type dhkemPrivateKey struct {
	raw   any
	pub   *dhkemPublicKey
	group group
}

func (k *dhkemPrivateKey) Bytes() []byte     { return k.group.serializePrivateKey(k.raw) }
func (k *dhkemPrivateKey) Public() PublicKey { return k.pub }

// dhkemScheme is the RFC 9180-style generic DHKEM construction: a
// Diffie-Hellman group plus the internal labeled KDF the HPKE suite
// table fixes for that group, used to extract-and-expand the raw DH
// output into a shared secret and to derive key pairs from seed bytes.
type dhkemScheme struct {
	id         ID
	group      group
	kdfScheme  kdf.Scheme
	suiteID    []byte
	secretSize int
}

func newDHKEM(id ID, g group, kdfID kdf.ID, secretSize int) (Scheme, error) {
	kdfScheme, err := kdf.New(kdfID)
	if err != nil {
		return nil, err
	}
	suiteID := make([]byte, 0, 7)
	suiteID = append(suiteID, 'K', 'E', 'M')
	suiteID = append(suiteID, byte(id>>8), byte(id))
	return &dhkemScheme{id: id, group: g, kdfScheme: kdfScheme, suiteID: suiteID, secretSize: secretSize}, nil
}

func (d *dhkemScheme) ID() ID              { return d.id }
func (d *dhkemScheme) PublicKeySize() int  { return d.group.publicKeySize() }
func (d *dhkemScheme) PrivateKeySize() int { return d.group.privateKeySize() }
func (d *dhkemScheme) EncSize() int        { return d.group.publicKeySize() }
func (d *dhkemScheme) SecretSize() int     { return d.secretSize }

func (d *dhkemScheme) wrap(sk, pk any) (*dhkemPrivateKey, *dhkemPublicKey) {
	pubKey := &dhkemPublicKey{raw: pk, group: d.group}
	privKey := &dhkemPrivateKey{raw: sk, pub: pubKey, group: d.group}
	return privKey, pubKey
}

func (d *dhkemScheme) GenerateKeyPair() (PrivateKey, PublicKey, error) {
	sk, pk, err := d.group.generateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	privKey, pubKey := d.wrap(sk, pk)
	return privKey, pubKey, nil
}

func (d *dhkemScheme) DeriveKeyPair(ikm []byte) (PrivateKey, PublicKey, error) {
	dkpPRK := kdf.LabeledExtract(d.kdfScheme, d.suiteID, nil, "dkp_prk", ikm)
	expand := func(label string, info []byte, l int) ([]byte, error) {
		return kdf.LabeledExpand(d.kdfScheme, d.suiteID, dkpPRK, label, info, l)
	}
	sk, pk, err := d.group.deriveKeyPair(expand)
	if err != nil {
		return nil, nil, err
	}
	privKey, pubKey := d.wrap(sk, pk)
	return privKey, pubKey, nil
}

func (d *dhkemScheme) SerializePublicKey(pk PublicKey) []byte {
	return pk.(*dhkemPublicKey).Bytes()
}

func (d *dhkemScheme) DeserializePublicKey(enc []byte) (PublicKey, error) {
	raw, err := d.group.deserializePublicKey(enc)
	if err != nil {
		return nil, err
	}
	return &dhkemPublicKey{raw: raw, group: d.group}, nil
}

func (d *dhkemScheme) SerializePrivateKey(sk PrivateKey) []byte {
	return sk.(*dhkemPrivateKey).Bytes()
}

func (d *dhkemScheme) DeserializePrivateKey(enc []byte) (PrivateKey, error) {
	raw, err := d.group.deserializePrivateKey(enc)
	if err != nil {
		return nil, err
	}
	pub := &dhkemPublicKey{raw: d.group.publicKeyFromPrivate(raw), group: d.group}
	return &dhkemPrivateKey{raw: raw, pub: pub, group: d.group}, nil
}

// extractAndExpand turns a raw DH output into a KEM shared secret, per
// the DHKEM ExtractAndExpand helper: a labeled eae_prk extract
// followed by a shared_secret expand bound to the kem_context.
func (d *dhkemScheme) extractAndExpand(dh, kemContext []byte) ([]byte, error) {
	eaePRK := kdf.LabeledExtract(d.kdfScheme, d.suiteID, nil, "eae_prk", dh)
	return kdf.LabeledExpand(d.kdfScheme, d.suiteID, eaePRK, "shared_secret", kemContext, d.secretSize)
}

func (d *dhkemScheme) Encap(pkR PublicKey) ([]byte, []byte, error) {
	skE, pkE, err := d.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	dh, err := d.group.dh(skE.(*dhkemPrivateKey).raw, pkR.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, nil, err
	}
	enc := d.SerializePublicKey(pkE)
	kemContext := append(append([]byte{}, enc...), d.SerializePublicKey(pkR)...)
	secret, err := d.extractAndExpand(dh, kemContext)
	if err != nil {
		return nil, nil, err
	}
	return secret, enc, nil
}

func (d *dhkemScheme) Decap(enc []byte, skR PrivateKey) ([]byte, error) {
	pkE, err := d.DeserializePublicKey(enc)
	if err != nil {
		return nil, err
	}
	dh, err := d.group.dh(skR.(*dhkemPrivateKey).raw, pkE.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, err
	}
	pkRm := d.SerializePublicKey(skR.Public())
	kemContext := append(append([]byte{}, enc...), pkRm...)
	return d.extractAndExpand(dh, kemContext)
}

func (d *dhkemScheme) AuthEncap(pkR PublicKey, skS PrivateKey) ([]byte, []byte, error) {
	skE, pkE, err := d.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	dh1, err := d.group.dh(skE.(*dhkemPrivateKey).raw, pkR.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, nil, err
	}
	dh2, err := d.group.dh(skS.(*dhkemPrivateKey).raw, pkR.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, nil, err
	}
	enc := d.SerializePublicKey(pkE)
	pkSm := d.SerializePublicKey(skS.Public())
	kemContext := append(append(append([]byte{}, enc...), d.SerializePublicKey(pkR)...), pkSm...)
	secret, err := d.extractAndExpand(append(dh1, dh2...), kemContext)
	if err != nil {
		return nil, nil, err
	}
	return secret, enc, nil
}

func (d *dhkemScheme) AuthDecap(enc []byte, skR PrivateKey, pkS PublicKey) ([]byte, error) {
	pkE, err := d.DeserializePublicKey(enc)
	if err != nil {
		return nil, err
	}
	dh1, err := d.group.dh(skR.(*dhkemPrivateKey).raw, pkE.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, err
	}
	dh2, err := d.group.dh(skR.(*dhkemPrivateKey).raw, pkS.(*dhkemPublicKey).raw)
	if err != nil {
		return nil, err
	}
	pkRm := d.SerializePublicKey(skR.Public())
	pkSm := d.SerializePublicKey(pkS)
	kemContext := append(append(append([]byte{}, enc...), pkRm...), pkSm...)
	return d.extractAndExpand(append(dh1, dh2...), kemContext)
}

// csprng is the randomness source for GenerateKeyPair across every
// group. It exists as a package variable, not a hardcoded
// crypto/rand.Reader literal, so tests can substitute a deterministic
// reader the way the NIST test vectors require.
var csprng = rand.Reader
