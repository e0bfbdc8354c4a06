// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package hpke implements the algorithm-agnostic core of Hybrid Public Key
// Encryption: the key schedule, the sealed encryption context, and the
// mode-orchestration entry points that glue together pluggable KEM, KDF,
// and AEAD primitives. Concrete primitives live in the kem, kdf, and aead
// subpackages.
package hpke

import (
	"encoding/binary"

	"github.com/go-hpke/hpke/aead"
	"github.com/go-hpke/hpke/kdf"
	"github.com/go-hpke/hpke/kem"
)

// Mode selects which of the four HPKE modes a key schedule invocation uses.
type Mode byte

const (
	ModeBase    Mode = 0x00
	ModePSK     Mode = 0x01
	ModeAuth    Mode = 0x02
	ModeAuthPSK Mode = 0x03
)

// Fixed ASCII labels used throughout the key schedule and exporter. These
// come directly from HPKE draft-05 and must not be altered: changing any
// of them breaks wire interoperability with a peer implementing the same
// draft, even though nothing downstream of this package enforces that
// interoperability at compile time.
const (
	labelSec       = "sec"
	labelExp       = "exp"
	labelKey       = "key"
	labelNonce     = "nonce"
	labelSecret    = "secret"
	labelPSKHash   = "psk_hash"
	labelPSKIDHash = "psk_id_hash"
	labelInfoHash  = "info_hash"
)

// SuiteID is the 10-byte domain separator identifying a concrete
// (KEM, KDF, AEAD) triple: "HPKE" || I2OSP(kem_id,2) || I2OSP(kdf_id,2) || I2OSP(aead_id,2).
type SuiteID [10]byte

// NewSuiteID encodes the suite identifier for the given algorithm triple.
func NewSuiteID(kemID kem.ID, kdfID kdf.ID, aeadID aead.ID) SuiteID {
	var id SuiteID
	copy(id[0:4], "HPKE")
	binary.BigEndian.PutUint16(id[4:6], uint16(kemID))
	binary.BigEndian.PutUint16(id[6:8], uint16(kdfID))
	binary.BigEndian.PutUint16(id[8:10], uint16(aeadID))
	return id
}

// Bytes returns the suite identifier as a byte slice.
func (s SuiteID) Bytes() []byte {
	b := make([]byte, len(s))
	copy(b, s[:])
	return b
}

// i2osp encodes n as a big-endian, zero-padded byte string of width L.
// The encryption context calls it with the AEAD nonce width, which for
// every AEAD here is wider than a uint64. For widths under 8 bytes the
// high-order bytes of n that do not fit are dropped without an error.
func i2osp(n uint64, length int) []byte {
	b := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}
	return b
}
