// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// recordTypes holds the field types of frame_system::EventRecord.
type recordTypes struct {
	phase  uint32
	topics uint32
}

func eventRecordTypes(md *metadata.Metadata) (fields recordTypes, err error) {
	entry, err := md.StorageEntry("System", "Events")
	if err != nil {
		return fields, err
	}

	records, err := md.Types.Type(entry.ValueType)
	if err != nil {
		return fields, err
	}
	if records.Def.Kind != metadata.KindSequence {
		return fields, fmt.Errorf("%w: System.Events is a %s", ErrRecordShape, records.Def.Kind)
	}

	record, err := md.Types.Type(records.Def.Elem)
	if err != nil {
		return fields, err
	}

	var found int
	for _, field := range record.Def.Fields {
		switch field.Name {
		case "phase":
			fields.phase = field.Type
			found++
		case "topics":
			fields.topics = field.Type
			found++
		}
	}
	if record.Def.Kind != metadata.KindComposite || found != 2 || len(record.Def.Fields) != 3 {
		return fields, fmt.Errorf("%w: %s", ErrRecordShape, record.PathString())
	}
	return fields, nil
}

// Decode splits the SCALE encoded System.Events value into its records.
func Decode(md *metadata.Metadata, data []byte) (*Events, error) {
	fields, err := eventRecordTypes(md)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(data)
	count, err := types.DecodeCompact(*scale.NewDecoder(reader))
	if err != nil {
		return nil, fmt.Errorf("decoding event count: %w", err)
	}
	if !count.IsUint64() || count.Uint64() > uint64(reader.Len()) {
		return nil, fmt.Errorf("event count %s exceeds the %d remaining bytes", count, reader.Len())
	}

	rest := data[len(data)-reader.Len():]
	records := make([]*Details, 0, count.Uint64())
	for i := 0; i < int(count.Uint64()); i++ {
		details, n, err := decodeRecord(md, fields, rest)
		if err != nil {
			return nil, fmt.Errorf("decoding event %d: %w", i, err)
		}
		details.Index = i
		records = append(records, details)
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after %d events", len(rest), len(records))
	}

	return &Events{metadata: md, records: records}, nil
}

func decodeRecord(md *metadata.Metadata, fields recordTypes, data []byte) (*Details, int, error) {
	phaseValue, offset, err := value.Decode(md.Types, fields.phase, data)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding phase: %w", err)
	}
	phase, err := phaseFromValue(phaseValue)
	if err != nil {
		return nil, 0, err
	}

	if len(data) < offset+2 {
		return nil, 0, fmt.Errorf("%w: missing event indices", ErrRecordShape)
	}
	palletIndex, variantIndex := data[offset], data[offset+1]
	offset += 2

	pallet, err := md.PalletByIndex(palletIndex)
	if err != nil {
		return nil, 0, err
	}
	variant, err := pallet.Event(variantIndex)
	if err != nil {
		return nil, 0, err
	}

	fieldsStart := offset
	for _, field := range variant.Fields {
		n, err := value.Skip(md.Types, field.Type, data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("skipping field %q of %s.%s: %w", field.Name, pallet.Name, variant.Name, err)
		}
		offset += n
	}
	fieldBytes := data[fieldsStart:offset]

	topicsValue, n, err := value.Decode(md.Types, fields.topics, data[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("decoding topics: %w", err)
	}
	offset += n

	topics := make([]common.Hash, len(topicsValue.Items))
	for i, topic := range topicsValue.Items {
		b, ok := topic.AsBytes()
		if !ok {
			return nil, 0, fmt.Errorf("%w: topic %d is not a hash", ErrRecordShape, i)
		}
		topics[i] = common.NewHash(b)
	}

	return &Details{
		Phase:        phase,
		PalletIndex:  palletIndex,
		VariantIndex: variantIndex,
		Topics:       topics,
		pallet:       pallet,
		variant:      variant,
		registry:     md.Types,
		fieldBytes:   fieldBytes,
	}, offset, nil
}

func phaseFromValue(v value.Value) (phase Phase, err error) {
	switch v.Name {
	case "ApplyExtrinsic":
		index, ok := v.AsUint()
		if !ok && len(v.Fields) == 1 {
			index, ok = v.Fields[0].Value.AsUint()
		}
		if !ok {
			return phase, fmt.Errorf("%w: phase %s", ErrRecordShape, v)
		}
		return Phase{Kind: PhaseApplyExtrinsic, ExtrinsicIndex: uint32(index)}, nil
	case "Finalization":
		return Phase{Kind: PhaseFinalization}, nil
	case "Initialization":
		return Phase{Kind: PhaseInitialization}, nil
	default:
		return phase, fmt.Errorf("%w: phase %s", ErrRecordShape, v)
	}
}
