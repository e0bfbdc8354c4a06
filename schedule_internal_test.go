// SPDX-FileCopyrightText: Copyright (c) 2026 the hpke contributors
// SPDX-License-Identifier: AGPL-3.0-only

package hpke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-hpke/hpke/kdf"
)

func TestVerifyPSKInputs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		mode    Mode
		psk     []byte
		pskID   []byte
		wantErr bool
	}{
		{"base with no psk", ModeBase, nil, nil, false},
		{"base with psk present", ModeBase, []byte("psk"), []byte("id"), true},
		{"auth with no psk", ModeAuth, nil, nil, false},
		{"auth with psk present", ModeAuth, []byte("psk"), []byte("id"), true},
		{"psk with both present", ModePSK, []byte("psk"), []byte("id"), false},
		{"psk with neither present", ModePSK, nil, nil, true},
		{"psk with only psk_id", ModePSK, nil, []byte("id"), true},
		{"psk with only psk", ModePSK, []byte("psk"), nil, true},
		{"auth_psk with both present", ModeAuthPSK, []byte("psk"), []byte("id"), false},
		{"auth_psk with neither present", ModeAuthPSK, nil, nil, true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			err := verifyPSKInputs(c.mode, c.psk, c.pskID)
			if c.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPSKInputs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyScheduleDeterministicAndInfoBound(t *testing.T) {
	t.Parallel()
	scheme, err := kdf.New(kdf.HKDFSHA256)
	require.NoError(t, err)

	suiteID := NewSuiteID(0x0020, 0x0001, 0x0001)
	sharedSecret := []byte("fixed kem shared secret 32 bytes")
	info := []byte("application info")

	key1, nonce1, exp1, err := keySchedule(scheme, suiteID, ModeBase, sharedSecret, info, nil, nil, 16, 12)
	require.NoError(t, err)
	assert.Len(t, key1, 16)
	assert.Len(t, nonce1, 12)
	assert.Len(t, exp1, scheme.HashSize())

	key2, nonce2, exp2, err := keySchedule(scheme, suiteID, ModeBase, sharedSecret, info, nil, nil, 16, 12)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "key schedule must be a pure function of its inputs")
	assert.Equal(t, nonce1, nonce2)
	assert.Equal(t, exp1, exp2)

	key3, _, _, err := keySchedule(scheme, suiteID, ModeBase, sharedSecret, []byte("different info"), nil, nil, 16, 12)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3, "changing info must change the derived key")

	_, _, _, err = keySchedule(scheme, suiteID, ModePSK, sharedSecret, info, nil, nil, 16, 12)
	assert.ErrorIs(t, err, ErrInvalidPSKInputs)
}

func TestKeyScheduleRejectsInvalidPSKInputsBeforeDeriving(t *testing.T) {
	t.Parallel()
	scheme, err := kdf.New(kdf.HKDFSHA256)
	require.NoError(t, err)
	suiteID := NewSuiteID(0x0020, 0x0001, 0x0001)

	_, _, _, err = keySchedule(scheme, suiteID, ModeBase, []byte("secret"), nil, []byte("psk"), []byte("id"), 16, 12)
	assert.ErrorIs(t, err, ErrInvalidPSKInputs)
}
