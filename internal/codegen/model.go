// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codegen

import (
	"fmt"
	"strconv"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

type palletModel struct {
	Name       string
	Package    string
	ImportPath string
	Types      string

	Calls     []callModel
	Events    []eventModel
	Storage   []storageModel
	Constants []constantModel
}

type callModel struct {
	Name   string
	Struct string
	Method string
	Docs   []string
	Fields []fieldDecl
}

type eventModel struct {
	Name   string
	Struct string
	Docs   []string
	Fields []fieldDecl
}

type storageModel struct {
	Name      string
	Method    string
	Docs      []string
	Default   bool
	ValueType string
	Hashers   []string
	Keys      []fieldDecl
}

// IsMap returns true if the entry is keyed.
func (s storageModel) IsMap() bool {
	return len(s.Hashers) > 0
}

type constantModel struct {
	Name   string
	Method string
	Docs   []string
	Type   string
}

type rootModel struct {
	Package    string
	ImportPath string
	Pallets    []palletModel
}

// roots returns the types of the items of the pallets.
func roots(registry *metadata.Registry, pallets []*metadata.Pallet) ([]uint32, error) {
	var ids []uint32
	for _, pallet := range pallets {
		calls, err := pallet.Calls()
		if err != nil {
			return nil, err
		}
		events, err := pallet.Events()
		if err != nil {
			return nil, err
		}
		for _, variants := range [][]metadata.Variant{calls, events} {
			for _, variant := range variants {
				for _, field := range variant.Fields {
					ids = append(ids, field.Type)
				}
			}
		}
		if pallet.Storage != nil {
			for i := range pallet.Storage.Entries {
				entry := &pallet.Storage.Entries[i]
				keys, err := entry.KeyTypes(registry)
				if err != nil {
					return nil, err
				}
				ids = append(ids, keys...)
				ids = append(ids, entry.ValueType)
			}
		}
		for _, constant := range pallet.Constants {
			ids = append(ids, constant.Type)
		}
	}
	return ids, nil
}

func (g *generator) palletModel(pallet *metadata.Pallet) (palletModel, error) {
	pkg := packageName(pallet.Name)
	model := palletModel{
		Name:       pallet.Name,
		Package:    pkg,
		ImportPath: g.opts.ModulePath + "/" + pkg,
		Types:      g.opts.ModulePath + "/" + typesPackage,
	}

	calls, err := pallet.Calls()
	if err != nil {
		return model, err
	}
	for _, call := range calls {
		fields, err := g.fields(call.Fields)
		if err != nil {
			return model, fmt.Errorf("call %s.%s: %w", pallet.Name, call.Name, err)
		}
		model.Calls = append(model.Calls, callModel{
			Name:   call.Name,
			Struct: exportedName(call.Name) + "Call",
			Method: exportedName(call.Name),
			Docs:   trimDocs(call.Docs),
			Fields: fields,
		})
	}

	events, err := pallet.Events()
	if err != nil {
		return model, err
	}
	for _, event := range events {
		fields, err := g.fields(event.Fields)
		if err != nil {
			return model, fmt.Errorf("event %s.%s: %w", pallet.Name, event.Name, err)
		}
		model.Events = append(model.Events, eventModel{
			Name:   event.Name,
			Struct: exportedName(event.Name),
			Docs:   trimDocs(event.Docs),
			Fields: fields,
		})
	}

	if pallet.Storage != nil {
		for i := range pallet.Storage.Entries {
			entry, err := g.storageModel(&pallet.Storage.Entries[i])
			if err != nil {
				return model, fmt.Errorf("storage entry %s.%s: %w", pallet.Name, pallet.Storage.Entries[i].Name, err)
			}
			model.Storage = append(model.Storage, entry)
		}
	}

	for _, constant := range pallet.Constants {
		typ, err := g.types.goType(constant.Type)
		if err != nil {
			return model, fmt.Errorf("constant %s.%s: %w", pallet.Name, constant.Name, err)
		}
		model.Constants = append(model.Constants, constantModel{
			Name:   constant.Name,
			Method: exportedName(constant.Name),
			Docs:   trimDocs(constant.Docs),
			Type:   typ,
		})
	}
	return model, nil
}

func (g *generator) fields(fields []metadata.Field) ([]fieldDecl, error) {
	decls := make([]fieldDecl, len(fields))
	for i, field := range fields {
		typ, err := g.types.goType(field.Type)
		if err != nil {
			return nil, err
		}
		name := structFieldName(field.Name, i)
		decls[i] = fieldDecl{
			Name:  name,
			Param: paramName(name),
			Type:  typ,
			Docs:  trimDocs(field.Docs),
		}
	}
	return decls, nil
}

var hasherNames = map[metadata.StorageHasher]string{
	metadata.Blake2_128:       "storage.Blake2_128",
	metadata.Blake2_256:       "storage.Blake2_256",
	metadata.Blake2_128Concat: "storage.Blake2_128Concat",
	metadata.Twox128:          "storage.Twox128",
	metadata.Twox256:          "storage.Twox256",
	metadata.Twox64Concat:     "storage.Twox64Concat",
	metadata.Identity:         "storage.Identity",
}

func (g *generator) storageModel(entry *metadata.StorageEntry) (storageModel, error) {
	valueType, err := g.types.goType(entry.ValueType)
	if err != nil {
		return storageModel{}, err
	}
	model := storageModel{
		Name:      entry.Name,
		Method:    exportedName(entry.Name),
		Docs:      trimDocs(entry.Docs),
		Default:   entry.Modifier == metadata.Default,
		ValueType: valueType,
	}

	keyTypes, err := entry.KeyTypes(g.md.Types)
	if err != nil {
		return model, err
	}
	for i, hasher := range entry.Hashers {
		name, ok := hasherNames[hasher]
		if !ok {
			return model, fmt.Errorf("unknown hasher %d", hasher)
		}
		model.Hashers = append(model.Hashers, name)

		typ, err := g.types.goType(keyTypes[i])
		if err != nil {
			return model, err
		}
		param := "key"
		if len(entry.Hashers) > 1 {
			param += strconv.Itoa(i)
		}
		model.Keys = append(model.Keys, fieldDecl{Param: param, Type: typ})
	}
	return model, nil
}
