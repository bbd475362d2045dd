// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Era(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		era      Era
		encoded  []byte
		period   uint64
		phase    uint64
		immortal bool
	}{
		"immortal": {
			era:      ImmortalEra(),
			encoded:  []byte{0},
			immortal: true,
		},
		"mortal 64 at 42": {
			era:     MortalEra(42, 64),
			encoded: []byte{0xa5, 0x02},
			period:  64,
			phase:   42,
		},
		"period rounded up": {
			era:     MortalEra(100, 5),
			encoded: []byte{0x42, 0x00},
			period:  8,
			phase:   4,
		},
		"period clamped low": {
			era:     MortalEra(7, 1),
			encoded: []byte{0x31, 0x00},
			period:  4,
			phase:   3,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.immortal, testCase.era.IsImmortal())
			assert.Equal(t, testCase.period, testCase.era.Period)
			assert.Equal(t, testCase.phase, testCase.era.Phase)

			encoded := testCase.era.Encode()
			assert.Equal(t, testCase.encoded, encoded)

			decoded, n, err := DecodeEra(encoded)
			require.NoError(t, err)
			assert.Equal(t, len(encoded), n)
			assert.Equal(t, testCase.era, decoded)
		})
	}
}

func Test_Era_BirthDeath(t *testing.T) {
	t.Parallel()

	era := MortalEra(100, 5)
	assert.Equal(t, uint64(100), era.Birth(105))
	assert.Equal(t, uint64(108), era.Death(105))
	assert.Equal(t, uint64(4), era.Birth(0))

	assert.Equal(t, uint64(0), ImmortalEra().Birth(105))
	assert.Equal(t, ^uint64(0), ImmortalEra().Death(105))
}

func Test_DecodeEra_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeEra(nil)
	assert.Error(t, err)

	_, _, err = DecodeEra([]byte{0x05})
	assert.Error(t, err)
}
