// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package hpke

import (
	"github.com/go-hpke/hpke/aead"
	"github.com/go-hpke/hpke/kdf"
	"github.com/go-hpke/hpke/kem"
)

// Suite is an algorithm-agnostic HPKE configuration: a fixed
// (KEM, KDF, AEAD) triple from which every setup function derives its
// encryption contexts. A Suite is safe to share across goroutines and
// across any number of setup calls.
type Suite struct {
	kemScheme  kem.Scheme
	kdfScheme  kdf.Scheme
	aeadScheme aead.Scheme
	suiteID    SuiteID
}

// NewSuite constructs the Suite for a (KEM, KDF, AEAD) triple, failing
// with ErrUnsupportedAlgorithm if any identifier is unrecognized.
func NewSuite(kemID kem.ID, kdfID kdf.ID, aeadID aead.ID) (*Suite, error) {
	kemScheme, err := kem.New(kemID)
	if err != nil {
		return nil, ErrUnsupportedAlgorithm
	}
	kdfScheme, err := kdf.New(kdfID)
	if err != nil {
		return nil, ErrUnsupportedAlgorithm
	}
	aeadScheme, err := aead.New(aeadID)
	if err != nil {
		return nil, ErrUnsupportedAlgorithm
	}
	return &Suite{
		kemScheme:  kemScheme,
		kdfScheme:  kdfScheme,
		aeadScheme: aeadScheme,
		suiteID:    NewSuiteID(kemID, kdfID, aeadID),
	}, nil
}

// KEM returns the suite's KEM primitive, for callers that need to
// generate or serialize keys outside of a setup call.
func (s *Suite) KEM() kem.Scheme { return s.kemScheme }

func (s *Suite) newContext(key, baseNonce, exporterSecret []byte) *context {
	return newContext(s.aeadScheme, s.kdfScheme, s.suiteID, key, baseNonce, exporterSecret)
}

func (s *Suite) schedule(mode Mode, sharedSecret, info, psk, pskID []byte) (*context, error) {
	key, baseNonce, exporterSecret, err := keySchedule(
		s.kdfScheme, s.suiteID, mode, sharedSecret, info, psk, pskID,
		s.aeadScheme.KeySize(), s.aeadScheme.NonceSize(),
	)
	if err != nil {
		return nil, err
	}
	return s.newContext(key, baseNonce, exporterSecret), nil
}

// SetupBaseS establishes a sender context in base mode: no
// authentication of the sender, no pre-shared key.
func (s *Suite) SetupBaseS(pkR kem.PublicKey, info []byte) (enc []byte, ctx *SenderContext, err error) {
	sharedSecret, enc, err := s.kemScheme.Encap(pkR)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.schedule(ModeBase, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return enc, &SenderContext{c}, nil
}

// SetupBaseR establishes a receiver context in base mode.
func (s *Suite) SetupBaseR(enc []byte, skR kem.PrivateKey, info []byte) (*ReceiverContext, error) {
	sharedSecret, err := s.kemScheme.Decap(enc, skR)
	if err != nil {
		return nil, err
	}
	c, err := s.schedule(ModeBase, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, err
	}
	return &ReceiverContext{c}, nil
}

// SetupPSKS establishes a sender context in psk mode: the sender and
// receiver share an out-of-band pre-shared key and its identifier.
func (s *Suite) SetupPSKS(pkR kem.PublicKey, info, psk, pskID []byte) (enc []byte, ctx *SenderContext, err error) {
	sharedSecret, enc, err := s.kemScheme.Encap(pkR)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.schedule(ModePSK, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, nil, err
	}
	return enc, &SenderContext{c}, nil
}

// SetupPSKR establishes a receiver context in psk mode.
func (s *Suite) SetupPSKR(enc []byte, skR kem.PrivateKey, info, psk, pskID []byte) (*ReceiverContext, error) {
	sharedSecret, err := s.kemScheme.Decap(enc, skR)
	if err != nil {
		return nil, err
	}
	c, err := s.schedule(ModePSK, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, err
	}
	return &ReceiverContext{c}, nil
}

// SetupAuthS establishes a sender context in auth mode: the
// receiver is convinced the context came from the holder of skS.
func (s *Suite) SetupAuthS(pkR kem.PublicKey, skS kem.PrivateKey, info []byte) (enc []byte, ctx *SenderContext, err error) {
	sharedSecret, enc, err := s.kemScheme.AuthEncap(pkR, skS)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.schedule(ModeAuth, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return enc, &SenderContext{c}, nil
}

// SetupAuthR establishes a receiver context in auth mode, verifying
// the binding to the sender's public key pkS.
func (s *Suite) SetupAuthR(enc []byte, skR kem.PrivateKey, pkS kem.PublicKey, info []byte) (*ReceiverContext, error) {
	sharedSecret, err := s.kemScheme.AuthDecap(enc, skR, pkS)
	if err != nil {
		return nil, err
	}
	c, err := s.schedule(ModeAuth, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, err
	}
	return &ReceiverContext{c}, nil
}

// SetupAuthPSKS establishes a sender context combining auth and psk
// mode: both sender authentication and a pre-shared key are required.
func (s *Suite) SetupAuthPSKS(pkR kem.PublicKey, skS kem.PrivateKey, info, psk, pskID []byte) (enc []byte, ctx *SenderContext, err error) {
	sharedSecret, enc, err := s.kemScheme.AuthEncap(pkR, skS)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.schedule(ModeAuthPSK, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, nil, err
	}
	return enc, &SenderContext{c}, nil
}

// SetupAuthPSKR establishes a receiver context combining auth and psk
// mode.
func (s *Suite) SetupAuthPSKR(enc []byte, skR kem.PrivateKey, pkS kem.PublicKey, info, psk, pskID []byte) (*ReceiverContext, error) {
	sharedSecret, err := s.kemScheme.AuthDecap(enc, skR, pkS)
	if err != nil {
		return nil, err
	}
	c, err := s.schedule(ModeAuthPSK, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, err
	}
	return &ReceiverContext{c}, nil
}
