// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package hpke

import "github.com/go-hpke/hpke/kdf"

// verifyPSKInputs enforces the mode/PSK consistency invariant: a PSK
// and its id must travel together, and their presence is mandatory
// for psk/auth_psk mode and forbidden for base/auth mode.
func verifyPSKInputs(mode Mode, psk, pskID []byte) error {
	gotPSK := len(psk) > 0
	gotPSKID := len(pskID) > 0
	if gotPSK != gotPSKID {
		return ErrInvalidPSKInputs
	}
	switch mode {
	case ModeBase, ModeAuth:
		if gotPSK {
			return ErrInvalidPSKInputs
		}
	case ModePSK, ModeAuthPSK:
		if !gotPSK {
			return ErrInvalidPSKInputs
		}
	}
	return nil
}

// keySchedule derives the encryption context's key, base nonce, and
// exporter secret from a shared secret and the mode's info/psk
// inputs, per the draft-05 construction: bind mode, the psk_id hash,
// and the info hash into a key_schedule_context, extract a secret from
// the shared secret salted by the psk hash, then expand
// key/nonce/exporter_secret from it under fixed labels, with the
// key_schedule_context as the expand info.
func keySchedule(scheme kdf.Scheme, suiteID SuiteID, mode Mode, sharedSecret, info, psk, pskID []byte, keySize, nonceSize int) (key, baseNonce, exporterSecret []byte, err error) {
	if err := verifyPSKInputs(mode, psk, pskID); err != nil {
		return nil, nil, nil, err
	}

	pskIDHash := kdf.LabeledExtract(scheme, suiteID.Bytes(), nil, labelPSKIDHash, pskID)
	infoHash := kdf.LabeledExtract(scheme, suiteID.Bytes(), nil, labelInfoHash, info)

	keyScheduleContext := make([]byte, 0, 1+len(pskIDHash)+len(infoHash))
	keyScheduleContext = append(keyScheduleContext, byte(mode))
	keyScheduleContext = append(keyScheduleContext, pskIDHash...)
	keyScheduleContext = append(keyScheduleContext, infoHash...)

	pskHash := kdf.LabeledExtract(scheme, suiteID.Bytes(), nil, labelPSKHash, psk)
	secret := kdf.LabeledExtract(scheme, suiteID.Bytes(), pskHash, labelSecret, sharedSecret)

	key, err = kdf.LabeledExpand(scheme, suiteID.Bytes(), secret, labelKey, keyScheduleContext, keySize)
	if err != nil {
		return nil, nil, nil, err
	}
	baseNonce, err = kdf.LabeledExpand(scheme, suiteID.Bytes(), secret, labelNonce, keyScheduleContext, nonceSize)
	if err != nil {
		return nil, nil, nil, err
	}
	exporterSecret, err = kdf.LabeledExpand(scheme, suiteID.Bytes(), secret, labelExp, keyScheduleContext, scheme.HashSize())
	if err != nil {
		return nil, nil, nil, err
	}
	return key, baseNonce, exporterSecret, nil
}
