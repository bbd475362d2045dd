// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/value"
	"github.com/spf13/cobra"
)

// ErrItemNotFound is returned by explore for an unknown pallet item.
var ErrItemNotFound = errors.New("no call, event, storage entry or constant with this name")

const maxTypeDepth = 8

func newExploreCommand(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "explore [PALLET [ITEM]]",
		Short: "Browse the pallets of the metadata",
		Long: `List the pallets of the metadata, the calls, events, storage entries and
constants of a pallet, or describe one of them.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := r.loadMetadata(cmd.Context())
			if err != nil {
				return err
			}

			w := &explorer{w: cmd.OutOrStdout(), md: md}
			switch len(args) {
			case 0:
				w.pallets()
			case 1:
				err = w.pallet(args[0])
			default:
				err = w.item(args[0], args[1])
			}
			if err != nil {
				return err
			}
			return w.err
		},
	}
}

// explorer writes descriptions of the metadata, keeping the first write
// error.
type explorer struct {
	w   io.Writer
	md  *metadata.Metadata
	err error
}

func (e *explorer) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *explorer) docs(indent string, docs []string) {
	for _, line := range docs {
		e.printf("%s//%s\n", indent, strings.TrimRight(line, " "))
	}
}

func (e *explorer) pallets() {
	for _, pallet := range e.md.Pallets {
		e.printf("%3d %s\n", pallet.Index, pallet.Name)
	}
}

func (e *explorer) pallet(name string) error {
	pallet, err := e.md.Pallet(name)
	if err != nil {
		return err
	}
	e.printf("%s (index %d)\n", pallet.Name, pallet.Index)
	e.docs("", pallet.Docs)

	calls, err := pallet.Calls()
	if err != nil {
		return err
	}
	if len(calls) > 0 {
		e.printf("\nCalls:\n")
		for _, call := range calls {
			e.printf("  %s\n", e.signature(call))
		}
	}

	events, err := pallet.Events()
	if err != nil {
		return err
	}
	if len(events) > 0 {
		e.printf("\nEvents:\n")
		for _, event := range events {
			e.printf("  %s\n", e.signature(event))
		}
	}

	if pallet.Storage != nil && len(pallet.Storage.Entries) > 0 {
		e.printf("\nStorage:\n")
		for i := range pallet.Storage.Entries {
			e.printf("  %s\n", e.storageSignature(&pallet.Storage.Entries[i]))
		}
	}

	if len(pallet.Constants) > 0 {
		e.printf("\nConstants:\n")
		for _, constant := range pallet.Constants {
			e.printf("  %s: %s\n", constant.Name, e.typeName(constant.Type))
		}
	}
	return nil
}

func (e *explorer) item(palletName, name string) error {
	pallet, err := e.md.Pallet(palletName)
	if err != nil {
		return err
	}

	if call, err := pallet.Call(name); err == nil {
		e.printf("call %s.%s\n", pallet.Name, e.signature(*call))
		e.docs("", call.Docs)
		return nil
	}

	if event, err := pallet.EventByName(name); err == nil {
		e.printf("event %s.%s\n", pallet.Name, e.signature(*event))
		e.docs("", event.Docs)
		return nil
	}

	if entry, err := pallet.StorageEntry(name); err == nil {
		e.printf("storage %s.%s\n", pallet.Name, e.storageSignature(entry))
		e.docs("", entry.Docs)
		return nil
	}

	if constant, err := pallet.Constant(name); err == nil {
		e.printf("constant %s.%s: %s\n", pallet.Name, constant.Name, e.typeName(constant.Type))
		e.docs("", constant.Docs)
		decoded, err := value.DecodeAll(e.md.Types, constant.Type, constant.Value)
		if err != nil {
			return fmt.Errorf("decoding constant %s.%s: %w", pallet.Name, constant.Name, err)
		}
		e.printf("value: %s\n", decoded)
		return nil
	}

	return fmt.Errorf("%w: %s.%s", ErrItemNotFound, pallet.Name, name)
}

func (e *explorer) signature(variant metadata.Variant) string {
	params := make([]string, len(variant.Fields))
	for i, field := range variant.Fields {
		typ := e.typeName(field.Type)
		if field.Name == "" {
			params[i] = typ
			continue
		}
		params[i] = field.Name + ": " + typ
	}
	return variant.Name + "(" + strings.Join(params, ", ") + ")"
}

func (e *explorer) storageSignature(entry *metadata.StorageEntry) string {
	s := entry.Name + ": "
	if entry.IsMap() {
		// unresolvable keys render as ?
		keys, _ := entry.KeyTypes(e.md.Types)
		parts := make([]string, len(entry.Hashers))
		for i, hasher := range entry.Hashers {
			key := "?"
			if i < len(keys) {
				key = e.typeName(keys[i])
			}
			parts[i] = hasher.String() + "(" + key + ")"
		}
		s += strings.Join(parts, ", ") + " -> "
	}
	s += e.typeName(entry.ValueType)
	if entry.Modifier == metadata.Optional {
		s += " (optional)"
	}
	return s
}

func (e *explorer) typeName(id uint32) string {
	return describeType(e.md.Types, id, 0)
}

// describeType renders a registry type the way it reads in the runtime
// sources.
func describeType(registry *metadata.Registry, id uint32, depth int) string {
	if depth > maxTypeDepth {
		return "..."
	}
	t, err := registry.Type(id)
	if err != nil {
		return fmt.Sprintf("<type %d>", id)
	}

	switch t.Def.Kind {
	case metadata.KindPrimitive:
		return t.Def.Primitive.String()
	case metadata.KindSequence:
		return "Vec<" + describeType(registry, t.Def.Elem, depth+1) + ">"
	case metadata.KindArray:
		return fmt.Sprintf("[%s; %d]", describeType(registry, t.Def.Elem, depth+1), t.Def.Len)
	case metadata.KindCompact:
		return "Compact<" + describeType(registry, t.Def.Elem, depth+1) + ">"
	case metadata.KindBitSequence:
		return "BitVec"
	case metadata.KindTuple:
		elems := make([]string, len(t.Def.Tuple))
		for i, elem := range t.Def.Tuple {
			elems[i] = describeType(registry, elem, depth+1)
		}
		return "(" + strings.Join(elems, ", ") + ")"
	}

	if len(t.Path) == 0 {
		return t.Def.Kind.String()
	}
	name := t.Path[len(t.Path)-1]
	var params []string
	for _, param := range t.Params {
		if param.Type != nil {
			params = append(params, describeType(registry, *param.Type, depth+1))
		}
	}
	if len(params) > 0 {
		name += "<" + strings.Join(params, ", ") + ">"
	}
	return name
}
