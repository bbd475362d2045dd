// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package events decodes the System.Events records of a block.
package events

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
)

var (
	ErrRecordShape = errors.New("unexpected event record shape")
	ErrNoOutcome   = errors.New("no ExtrinsicSuccess or ExtrinsicFailed event")
)

// Event is implemented by the generated event structs.
type Event interface {
	PalletName() string
	EventName() string
}

// PhaseKind is the phase of block execution an event was emitted in.
type PhaseKind uint8

// Phases of block execution.
const (
	PhaseApplyExtrinsic PhaseKind = iota
	PhaseFinalization
	PhaseInitialization
)

// Phase is the phase of an event, with the extrinsic index when the
// event was emitted while applying an extrinsic.
type Phase struct {
	Kind           PhaseKind
	ExtrinsicIndex uint32
}

func (p Phase) String() string {
	switch p.Kind {
	case PhaseApplyExtrinsic:
		return fmt.Sprintf("ApplyExtrinsic(%d)", p.ExtrinsicIndex)
	case PhaseFinalization:
		return "Finalization"
	default:
		return "Initialization"
	}
}

// Details is a single event record with its fields still encoded.
type Details struct {
	Index        int
	Phase        Phase
	PalletIndex  uint8
	VariantIndex uint8
	Topics       []common.Hash

	pallet     *metadata.Pallet
	variant    *metadata.Variant
	registry   *metadata.Registry
	fieldBytes []byte
}

// PalletName returns the name of the pallet that emitted the event.
func (d *Details) PalletName() string {
	return d.pallet.Name
}

// EventName returns the event variant name.
func (d *Details) EventName() string {
	return d.variant.Name
}

// Variant returns the event variant metadata.
func (d *Details) Variant() *metadata.Variant {
	return d.variant
}

// FieldBytes returns the SCALE encoded event fields.
func (d *Details) FieldBytes() []byte {
	return d.fieldBytes
}

// Is returns true when the event is the given pallet event.
func (d *Details) Is(pallet, event string) bool {
	return d.pallet.Name == pallet && d.variant.Name == event
}

// FieldValues decodes the event fields dynamically into a composite.
func (d *Details) FieldValues() (value.Value, error) {
	fields := make([]value.Field, len(d.variant.Fields))
	rest := d.fieldBytes
	for i, field := range d.variant.Fields {
		v, n, err := value.Decode(d.registry, field.Type, rest)
		if err != nil {
			return value.Value{}, fmt.Errorf("decoding field %d of %s.%s: %w",
				i, d.pallet.Name, d.variant.Name, err)
		}
		fields[i] = value.Field{Name: field.Name, Value: v}
		rest = rest[n:]
	}
	return value.Composite(fields...), nil
}

// As decodes the event into target when it is the same pallet event and
// returns false otherwise.
func (d *Details) As(target Event) (bool, error) {
	if !d.Is(target.PalletName(), target.EventName()) {
		return false, nil
	}
	if err := types.Decode(d.fieldBytes, target); err != nil {
		return false, fmt.Errorf("decoding %s.%s: %w", d.pallet.Name, d.variant.Name, err)
	}
	return true, nil
}

func (d *Details) String() string {
	return fmt.Sprintf("%s.%s at %s", d.pallet.Name, d.variant.Name, d.Phase)
}
