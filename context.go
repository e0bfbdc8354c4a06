// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package hpke

import (
	"sync"

	"github.com/go-hpke/hpke/aead"
	"github.com/go-hpke/hpke/kdf"
)

// maxSeq is the largest sequence number a context may use; 2^64-1
// itself is never consumed, matching the invariant that the nonce
// space must not wrap.
const maxSeq = ^uint64(0)

// context is the sealed state shared by a sender and receiver
// encryption context: a fixed key and base nonce from the key
// schedule, an exporter secret for Export, and a strictly
// monotonic sequence counter guarded against concurrent misuse.
type context struct {
	mu             sync.Mutex
	aeadScheme     aead.Scheme
	kdfScheme      kdf.Scheme
	suiteID        SuiteID
	key            []byte
	baseNonce      []byte
	exporterSecret []byte
	seq            uint64 // next sequence number to use
}

func newContext(aeadScheme aead.Scheme, kdfScheme kdf.Scheme, suiteID SuiteID, key, baseNonce, exporterSecret []byte) *context {
	return &context{
		aeadScheme:     aeadScheme,
		kdfScheme:      kdfScheme,
		suiteID:        suiteID,
		key:            key,
		baseNonce:      baseNonce,
		exporterSecret: exporterSecret,
	}
}

// currentNonce XORs the base nonce with the big-endian encoding of
// seq, left-padded to the AEAD's nonce size.
func (c *context) currentNonce(seq uint64) []byte {
	nonce := make([]byte, len(c.baseNonce))
	copy(nonce, c.baseNonce)
	seqBytes := i2osp(seq, len(nonce))
	for i := range nonce {
		nonce[i] ^= seqBytes[i]
	}
	return nonce
}

// advanceSeq consumes the current sequence number, advancing to the
// next one. It must only be called when seq < maxSeq: the one call
// made at seq == maxSeq never reaches here, since its nonce would
// have no successor.
func (c *context) advanceSeq() {
	c.seq++
}

// SenderContext seals messages under the sender side of an
// established HPKE encryption context.
type SenderContext struct {
	*context
}

// Seal encrypts and authenticates pt, binding aad, under the current
// sequence number's nonce, then advances the sequence number. It
// refuses to run past the nonce space rather than reuse a nonce.
func (s *SenderContext) Seal(aad, pt []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == maxSeq {
		return nil, ErrSequenceOverflow
	}
	nonce := s.currentNonce(s.seq)
	ct, err := s.aeadScheme.Seal(s.key, nonce, aad, pt)
	if err != nil {
		return nil, err
	}
	s.advanceSeq()
	return ct, nil
}

// Export derives l bytes of secret material bound to exporterContext
// from the exporter secret. It never touches the sequence counter.
func (s *SenderContext) Export(exporterContext []byte, l int) ([]byte, error) {
	return s.context.export(exporterContext, l)
}

// ReceiverContext opens messages under the receiver side of an
// established HPKE encryption context.
type ReceiverContext struct {
	*context
}

// Open authenticates aad and ct under the current sequence number's
// nonce and, on success, returns the recovered plaintext. The
// sequence number is advanced unconditionally, even when
// authentication fails, so that a receiver who rejects a tampered
// message does not resynchronize with an attacker probing the nonce
// sequence.
func (r *ReceiverContext) Open(aad, ct []byte) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seq == maxSeq {
		return nil, ErrSequenceOverflow
	}
	nonce := r.currentNonce(r.seq)
	pt, err := r.aeadScheme.Open(r.key, nonce, aad, ct)
	r.advanceSeq()
	if err != nil {
		return nil, ErrOpenFailed
	}
	return pt, nil
}

// Export derives l bytes of secret material bound to exporterContext
// from the exporter secret. It never touches the sequence counter.
func (r *ReceiverContext) Export(exporterContext []byte, l int) ([]byte, error) {
	return r.context.export(exporterContext, l)
}

func (c *context) export(exporterContext []byte, l int) ([]byte, error) {
	return kdf.LabeledExpand(c.kdfScheme, c.suiteID.Bytes(), c.exporterSecret, labelSec, exporterContext, l)
}
