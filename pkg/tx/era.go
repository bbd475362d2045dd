// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	minEraPeriod = 4
	maxEraPeriod = 1 << 16
)

// Era is the validity window of a transaction. The zero Era is immortal.
type Era struct {
	Period uint64
	Phase  uint64
}

// ImmortalEra returns an era that never expires.
func ImmortalEra() Era {
	return Era{}
}

// MortalEra returns the era of the given period starting at the block
// number. The period is rounded up to a power of two in [4, 65536].
func MortalEra(blockNumber, period uint64) Era {
	if period < minEraPeriod {
		period = minEraPeriod
	}
	if period > maxEraPeriod {
		period = maxEraPeriod
	}
	period = 1 << bits.Len64(period-1)

	quantizeFactor := period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}
	phase := blockNumber % period / quantizeFactor * quantizeFactor
	return Era{Period: period, Phase: phase}
}

// IsImmortal returns true for the immortal era.
func (e Era) IsImmortal() bool {
	return e.Period == 0
}

// Birth returns the first block of the era relative to the current block.
func (e Era) Birth(current uint64) uint64 {
	if e.IsImmortal() {
		return 0
	}
	if current < e.Phase {
		current = e.Phase
	}
	return (current-e.Phase)/e.Period*e.Period + e.Phase
}

// Death returns the first block the era is no longer valid in.
func (e Era) Death(current uint64) uint64 {
	if e.IsImmortal() {
		return ^uint64(0)
	}
	return e.Birth(current) + e.Period
}

// Encode returns the SCALE encoding of the era, one zero byte for the
// immortal era and two bytes otherwise.
func (e Era) Encode() []byte {
	if e.IsImmortal() {
		return []byte{0}
	}

	quantizeFactor := e.Period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}

	low := uint64(bits.TrailingZeros64(e.Period)) - 1
	if low < 1 {
		low = 1
	}
	if low > 15 {
		low = 15
	}
	encoded := uint16(low) | uint16(e.Phase/quantizeFactor)<<4

	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, encoded)
	return out
}

// DecodeEra decodes an era from the start of data.
func DecodeEra(data []byte) (era Era, n int, err error) {
	if len(data) == 0 {
		return era, 0, fmt.Errorf("decoding era: no data")
	}
	if data[0] == 0 {
		return ImmortalEra(), 1, nil
	}
	if len(data) < 2 {
		return era, 0, fmt.Errorf("decoding era: expected 2 bytes, got %d", len(data))
	}

	encoded := uint64(binary.LittleEndian.Uint16(data))
	period := uint64(2) << (encoded % (1 << 4))
	quantizeFactor := period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}
	phase := (encoded >> 4) * quantizeFactor
	if period < minEraPeriod || phase >= period {
		return era, 0, fmt.Errorf("decoding era: invalid period %d and phase %d", period, phase)
	}
	return Era{Period: period, Phase: phase}, 2, nil
}

func (e Era) String() string {
	if e.IsImmortal() {
		return "immortal"
	}
	return fmt.Sprintf("mortal(period %d, phase %d)", e.Period, e.Phase)
}
