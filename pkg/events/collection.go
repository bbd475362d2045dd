// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// Events are the event records of a block, or a subset of them.
type Events struct {
	metadata *metadata.Metadata
	records  []*Details
}

// Len returns the number of events.
func (e *Events) Len() int {
	return len(e.records)
}

// All returns the events in emission order.
func (e *Events) All() []*Details {
	return e.records
}

// Filter returns the events matching keep.
func (e *Events) Filter(keep func(*Details) bool) *Events {
	var records []*Details
	for _, record := range e.records {
		if keep(record) {
			records = append(records, record)
		}
	}
	return &Events{metadata: e.metadata, records: records}
}

// ForExtrinsic returns the events emitted while applying the extrinsic at
// the given index of the block.
func (e *Events) ForExtrinsic(index uint32) *Events {
	return e.Filter(func(d *Details) bool {
		return d.Phase.Kind == PhaseApplyExtrinsic && d.Phase.ExtrinsicIndex == index
	})
}

// FindFirstDetails returns the first event of the given pallet and name.
func (e *Events) FindFirstDetails(pallet, event string) (*Details, bool) {
	for _, record := range e.records {
		if record.Is(pallet, event) {
			return record, true
		}
	}
	return nil, false
}

// Has returns true when an event of the given pallet and name is present.
func (e *Events) Has(pallet, event string) bool {
	_, ok := e.FindFirstDetails(pallet, event)
	return ok
}

// eventPointer constrains PT to be *T implementing Event.
type eventPointer[T any] interface {
	*T
	Event
}

// Find decodes every event of type T.
func Find[T any, PT eventPointer[T]](e *Events) ([]T, error) {
	var found []T
	for _, record := range e.records {
		var event T
		ok, err := record.As(PT(&event))
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, event)
		}
	}
	return found, nil
}

// FindFirst decodes the first event of type T.
func FindFirst[T any, PT eventPointer[T]](e *Events) (event T, found bool, err error) {
	for _, record := range e.records {
		found, err = record.As(PT(&event))
		if err != nil || found {
			return event, found, err
		}
	}
	return event, false, nil
}

// Has returns true when an event of type T is present.
func Has[T any, PT eventPointer[T]](e *Events) bool {
	var event T
	target := PT(&event)
	return e.Has(target.PalletName(), target.EventName())
}

// DispatchResult returns nil when the events contain System.ExtrinsicSuccess,
// the decoded *DispatchError for System.ExtrinsicFailed, and ErrNoOutcome
// otherwise. It is meant for the events of a single extrinsic.
func (e *Events) DispatchResult() error {
	for _, record := range e.records {
		switch {
		case record.Is("System", "ExtrinsicSuccess"):
			return nil
		case record.Is("System", "ExtrinsicFailed"):
			dispatchError, err := record.DispatchError(e.metadata)
			if err != nil {
				return err
			}
			return dispatchError
		}
	}
	return ErrNoOutcome
}
