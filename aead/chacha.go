// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package aead

import "github.com/katzenpost/chacha20poly1305"

// chachaScheme implements Scheme with ChaCha20-Poly1305, the same
// construction and package the mkem envelope cipher uses.
type chachaScheme struct{}

func newChaCha20Poly1305() Scheme {
	return &chachaScheme{}
}

func (s *chachaScheme) ID() ID         { return ChaCha20Poly1305 }
func (s *chachaScheme) KeySize() int   { return chacha20poly1305.KeySize }
func (s *chachaScheme) NonceSize() int { return chacha20poly1305.NonceSize }
func (s *chachaScheme) Overhead() int  { return 16 }

func (s *chachaScheme) Seal(key, nonce, aad, pt []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, pt, aad), nil
}

func (s *chachaScheme) Open(key, nonce, aad, ct []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return pt, nil
}
