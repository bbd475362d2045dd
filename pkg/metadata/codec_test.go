// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_reader_compact(t *testing.T) {
	t.Parallel()

	r := newReader([]byte{0x01, 0x01, 0x08})
	assert.Equal(t, uint32(64), r.compact())
	assert.Equal(t, uint32(2), r.compact())
	assert.NoError(t, r.err)

	r = newReader(nil)
	assert.Zero(t, r.compact())
	assert.ErrorIs(t, r.err, io.ErrUnexpectedEOF)

	r = newReader([]byte{0x01})
	assert.Zero(t, r.compact())
	assert.ErrorIs(t, r.err, io.ErrUnexpectedEOF)

	// a length at the end of the input no longer reads as an empty collection
	r = newReader(nil)
	assert.Zero(t, r.length())
	assert.ErrorIs(t, r.err, io.ErrUnexpectedEOF)
}
