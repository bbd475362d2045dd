// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// substitutes maps the last path segment of runtime types to the Go types
// of pkg/types they are generated as.
var substitutes = map[string]string{
	"AccountId32": "types.AccountID32",
	"H256":        "types.H256",
}

// transparent runtime types are generated as their single field.
var transparent = map[string]bool{
	"BoundedVec":      true,
	"WeakBoundedVec":  true,
	"BoundedBTreeMap": true,
	"BoundedBTreeSet": true,
	"BTreeMap":        true,
	"BTreeSet":        true,
	"Cow":             true,
	"H160":            true,
	"H512":            true,
	"Perbill":         true,
	"Percent":         true,
	"Permill":         true,
	"Perquintill":     true,
	"PerU16":          true,
	"FixedU64":        true,
	"FixedU128":       true,
	"FixedI64":        true,
	"FixedI128":       true,
}

var primitiveTypes = map[metadata.Primitive]string{
	metadata.Bool: "bool",
	metadata.Char: "rune",
	metadata.Str:  "string",
	metadata.U8:   "uint8",
	metadata.U16:  "uint16",
	metadata.U32:  "uint32",
	metadata.U64:  "uint64",
	metadata.U128: "types.U128",
	metadata.U256: "types.U256",
	metadata.I8:   "int8",
	metadata.I16:  "int16",
	metadata.I32:  "int32",
	metadata.I64:  "int64",
	metadata.I128: "types.I128",
	metadata.I256: "types.I256",
}

type declKind string

const (
	declStruct declKind = "struct"
	declAlias  declKind = "alias"
	declEnum   declKind = "enum"
)

// typeDecl is a type declared in the runtimetypes package.
type typeDecl struct {
	ID       uint32
	Name     string
	Path     string
	Kind     declKind
	Docs     []string
	Alias    string
	Fields   []fieldDecl
	Variants []variantDecl
}

type fieldDecl struct {
	Name  string
	Param string
	Type  string
	Docs  []string
}

type variantDecl struct {
	Name   string
	Index  uint8
	Fields []fieldDecl
	Docs   []string
}

// resolver maps registry types to Go type expressions and decides which
// of them are declared in the runtimetypes package.
type resolver struct {
	registry *metadata.Registry
	// qualifier prefixes declared type names outside of runtimetypes.
	qualifier string
	names     map[uint32]string
	declared  []uint32
}

func newResolver(registry *metadata.Registry, roots []uint32) (*resolver, error) {
	r := &resolver{
		registry:  registry,
		qualifier: "runtimetypes.",
		names:     make(map[uint32]string),
	}

	reachable := make(map[uint32]bool)
	for _, root := range roots {
		if err := r.walk(root, reachable); err != nil {
			return nil, err
		}
	}
	for id := range reachable {
		t, _ := registry.Type(id)
		if r.isDeclared(t) {
			r.declared = append(r.declared, id)
		}
	}
	sort.Slice(r.declared, func(i, j int) bool { return r.declared[i] < r.declared[j] })

	if err := r.assignNames(); err != nil {
		return nil, err
	}
	return r, nil
}

// walk marks the types the Go expression of id depends on.
func (r *resolver) walk(id uint32, seen map[uint32]bool) error {
	if seen[id] {
		return nil
	}
	t, err := r.registry.Type(id)
	if err != nil {
		return err
	}
	seen[id] = true

	for _, child := range r.children(t) {
		if err := r.walk(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// children returns the types appearing in the Go expression or the
// declaration of t.
func (r *resolver) children(t *metadata.Type) []uint32 {
	switch t.Def.Kind {
	case metadata.KindComposite:
		if _, ok := substitutes[lastSegment(t)]; ok {
			return nil
		}
		ids := make([]uint32, len(t.Def.Fields))
		for i, field := range t.Def.Fields {
			ids[i] = field.Type
		}
		return ids
	case metadata.KindVariant:
		var ids []uint32
		for _, variant := range t.Def.Variants {
			for _, field := range variant.Fields {
				ids = append(ids, field.Type)
			}
		}
		return ids
	case metadata.KindSequence, metadata.KindArray:
		return []uint32{t.Def.Elem}
	case metadata.KindTuple:
		return t.Def.Tuple
	default:
		return nil
	}
}

func lastSegment(t *metadata.Type) string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

func isOption(t *metadata.Type) bool {
	return t.Def.Kind == metadata.KindVariant && len(t.Path) == 1 && t.Path[0] == "Option"
}

func isTransparent(t *metadata.Type) bool {
	return t.Def.Kind == metadata.KindComposite && len(t.Def.Fields) == 1 && transparent[lastSegment(t)]
}

func (r *resolver) isDeclared(t *metadata.Type) bool {
	switch t.Def.Kind {
	case metadata.KindComposite:
		_, substituted := substitutes[lastSegment(t)]
		return !substituted && !isTransparent(t)
	case metadata.KindVariant:
		return !isOption(t)
	case metadata.KindTuple:
		return len(t.Def.Tuple) > 1
	default:
		return false
	}
}

// assignNames names every declared type after the last segment of its
// path. Clashing names get the crate prefixed, then the whole path, then
// the generic arguments appended, then the type id.
func (r *resolver) assignNames() error {
	taken := make(map[string]bool)
	groups := make(map[string][]*metadata.Type)
	var bases []string
	var tuples []*metadata.Type

	for _, id := range r.declared {
		t, err := r.registry.Type(id)
		if err != nil {
			return err
		}
		if t.Def.Kind == metadata.KindTuple {
			tuples = append(tuples, t)
			continue
		}

		base := exportedName(lastSegment(t))
		if len(t.Path) == 0 {
			base = "Type" + strconv.FormatUint(uint64(id), 10)
		}
		if _, ok := groups[base]; !ok {
			bases = append(bases, base)
		}
		groups[base] = append(groups[base], t)
	}
	sort.Strings(bases)

	for _, base := range bases {
		if group := groups[base]; len(group) == 1 {
			r.names[group[0].ID] = base
			taken[base] = true
		}
	}

	strategies := []func(base string, t *metadata.Type) string{
		func(base string, t *metadata.Type) string {
			if len(t.Path) < 2 {
				return base
			}
			return exportedName(t.Path[0]) + base
		},
		func(base string, t *metadata.Type) string {
			return fullPathName(t)
		},
		func(base string, t *metadata.Type) string {
			name := base
			if len(t.Path) >= 2 {
				name = exportedName(t.Path[0]) + base
			}
			return name + r.paramSuffix(t)
		},
		func(base string, t *metadata.Type) string {
			return base + strconv.FormatUint(uint64(t.ID), 10)
		},
	}

	for _, base := range bases {
		group := groups[base]
		if len(group) == 1 {
			continue
		}
		for _, strategy := range strategies {
			names := make([]string, len(group))
			unique := make(map[string]bool, len(group))
			ok := true
			for i, t := range group {
				names[i] = strategy(base, t)
				if unique[names[i]] || taken[names[i]] {
					ok = false
				}
				unique[names[i]] = true
			}
			if !ok {
				continue
			}
			for i, t := range group {
				r.names[t.ID] = names[i]
				taken[names[i]] = true
			}
			break
		}
		if _, named := r.names[group[0].ID]; !named {
			return fmt.Errorf("cannot name the %d types called %s", len(group), base)
		}
	}

	for _, t := range tuples {
		name := "Tuple"
		for _, elem := range t.Def.Tuple {
			name += r.shortName(elem, 0)
		}
		if taken[name] {
			name += strconv.FormatUint(uint64(t.ID), 10)
		}
		r.names[t.ID] = name
		taken[name] = true
	}
	return nil
}

func fullPathName(t *metadata.Type) string {
	name := ""
	for _, segment := range t.Path {
		name += exportedName(segment)
	}
	return name
}

func (r *resolver) paramSuffix(t *metadata.Type) string {
	suffix := ""
	for _, param := range t.Params {
		if param.Type != nil {
			suffix += r.shortName(*param.Type, 0)
		}
	}
	return suffix
}

// shortName is a structural name of a type, used to disambiguate
// declarations. It does not depend on the names assigned so far.
func (r *resolver) shortName(id uint32, depth int) string {
	t, err := r.registry.Type(id)
	if err != nil || depth > 4 {
		return "X"
	}

	switch t.Def.Kind {
	case metadata.KindPrimitive:
		return exportedName(t.Def.Primitive.String())
	case metadata.KindSequence:
		elem, _ := r.registry.Type(t.Def.Elem)
		if elem != nil && elem.Def.Kind == metadata.KindPrimitive && elem.Def.Primitive == metadata.U8 {
			return "Bytes"
		}
		return "Vec" + r.shortName(t.Def.Elem, depth+1)
	case metadata.KindArray:
		return "Array" + strconv.FormatUint(uint64(t.Def.Len), 10) + r.shortName(t.Def.Elem, depth+1)
	case metadata.KindTuple:
		if len(t.Def.Tuple) == 0 {
			return "Unit"
		}
		name := "Tuple"
		for _, elem := range t.Def.Tuple {
			name += r.shortName(elem, depth+1)
		}
		return name
	case metadata.KindCompact:
		return "Compact" + r.shortName(t.Def.Elem, depth+1)
	case metadata.KindBitSequence:
		return "BitSequence"
	default:
		name := exportedName(lastSegment(t))
		if isOption(t) || isTransparent(t) {
			for _, param := range t.Params {
				if param.Type != nil {
					name += r.shortName(*param.Type, depth+1)
				}
			}
		}
		return name
	}
}

// goType returns the Go type expression of id as written outside of the
// runtimetypes package.
func (r *resolver) goType(id uint32) (string, error) {
	return r.typeExpr(id, r.qualifier)
}

// localType returns the Go type expression of id as written inside the
// runtimetypes package.
func (r *resolver) localType(id uint32) (string, error) {
	return r.typeExpr(id, "")
}

func (r *resolver) typeExpr(id uint32, qualifier string) (string, error) {
	if name, ok := r.names[id]; ok {
		return qualifier + name, nil
	}

	t, err := r.registry.Type(id)
	if err != nil {
		return "", err
	}

	switch t.Def.Kind {
	case metadata.KindComposite:
		if substitute, ok := substitutes[lastSegment(t)]; ok {
			return substitute, nil
		}
		if isTransparent(t) {
			return r.typeExpr(t.Def.Fields[0].Type, qualifier)
		}
	case metadata.KindVariant:
		if isOption(t) {
			inner, err := r.optionInner(t)
			if err != nil {
				return "", err
			}
			elem, err := r.typeExpr(inner, qualifier)
			if err != nil {
				return "", err
			}
			return "types.Option[" + elem + "]", nil
		}
	case metadata.KindSequence:
		elem, err := r.registry.Type(t.Def.Elem)
		if err != nil {
			return "", err
		}
		if elem.Def.Kind == metadata.KindPrimitive && elem.Def.Primitive == metadata.U8 {
			return "[]byte", nil
		}
		inner, err := r.typeExpr(t.Def.Elem, qualifier)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	case metadata.KindArray:
		elem, err := r.registry.Type(t.Def.Elem)
		if err != nil {
			return "", err
		}
		length := strconv.FormatUint(uint64(t.Def.Len), 10)
		if elem.Def.Kind == metadata.KindPrimitive && elem.Def.Primitive == metadata.U8 {
			return "[" + length + "]byte", nil
		}
		inner, err := r.typeExpr(t.Def.Elem, qualifier)
		if err != nil {
			return "", err
		}
		return "[" + length + "]" + inner, nil
	case metadata.KindTuple:
		switch len(t.Def.Tuple) {
		case 0:
			return "struct{}", nil
		case 1:
			return r.typeExpr(t.Def.Tuple[0], qualifier)
		}
	case metadata.KindPrimitive:
		if name, ok := primitiveTypes[t.Def.Primitive]; ok {
			return name, nil
		}
	case metadata.KindCompact:
		elem, err := r.registry.Type(t.Def.Elem)
		if err != nil {
			return "", err
		}
		if elem.IsUnit() {
			return "struct{}", nil
		}
		return "types.UCompact", nil
	case metadata.KindBitSequence:
		return "types.BitSequence", nil
	}

	return "", fmt.Errorf("no Go type for %s type %d %s", t.Def.Kind, id, t.PathString())
}

func (r *resolver) optionInner(t *metadata.Type) (uint32, error) {
	for _, variant := range t.Def.Variants {
		if variant.Name == "Some" && len(variant.Fields) == 1 {
			return variant.Fields[0].Type, nil
		}
	}
	return 0, fmt.Errorf("option type %d has no Some variant", t.ID)
}

// containsByValue returns true if the Go value of id embeds target
// without an indirection, which would make a recursive declaration
// infinitely sized.
func (r *resolver) containsByValue(id, target uint32, seen map[uint32]bool) bool {
	if id == target {
		return true
	}
	if seen[id] {
		return false
	}
	seen[id] = true

	t, err := r.registry.Type(id)
	if err != nil {
		return false
	}
	switch t.Def.Kind {
	case metadata.KindSequence, metadata.KindCompact, metadata.KindPrimitive, metadata.KindBitSequence:
		return false
	case metadata.KindComposite:
		if _, ok := substitutes[lastSegment(t)]; ok {
			return false
		}
	}

	for _, child := range r.children(t) {
		if r.containsByValue(child, target, seen) {
			return true
		}
	}
	return false
}

// fieldType returns the Go type of a field declared in owner, with a
// pointer when the field would embed its owner.
func (r *resolver) fieldType(owner, id uint32, local bool) (string, error) {
	qualifier := r.qualifier
	if local {
		qualifier = ""
	}
	expr, err := r.typeExpr(id, qualifier)
	if err != nil {
		return "", err
	}
	if r.containsByValue(id, owner, make(map[uint32]bool)) {
		return "*" + expr, nil
	}
	return expr, nil
}

// decls builds the declarations of the runtimetypes package.
func (r *resolver) decls() ([]typeDecl, error) {
	decls := make([]typeDecl, 0, len(r.declared))
	for _, id := range r.declared {
		t, err := r.registry.Type(id)
		if err != nil {
			return nil, err
		}
		decl, err := r.decl(t)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Name < decls[j].Name })
	return decls, nil
}

func (r *resolver) decl(t *metadata.Type) (typeDecl, error) {
	decl := typeDecl{
		ID:   t.ID,
		Name: r.names[t.ID],
		Path: t.PathString(),
		Docs: trimDocs(t.Docs),
	}

	switch t.Def.Kind {
	case metadata.KindTuple:
		decl.Kind = declStruct
		decl.Path = "a tuple"
		for i, elem := range t.Def.Tuple {
			typ, err := r.fieldType(t.ID, elem, true)
			if err != nil {
				return decl, err
			}
			decl.Fields = append(decl.Fields, fieldDecl{Name: "Field" + strconv.Itoa(i), Type: typ})
		}
		return decl, nil

	case metadata.KindVariant:
		decl.Kind = declEnum
		for _, variant := range t.Def.Variants {
			v := variantDecl{
				Name:  exportedName(variant.Name),
				Index: variant.Index,
				Docs:  trimDocs(variant.Docs),
			}
			for i, field := range variant.Fields {
				typ, err := r.fieldType(t.ID, field.Type, true)
				if err != nil {
					return decl, err
				}
				v.Fields = append(v.Fields, fieldDecl{
					Name: variantFieldName(v.Name, field.Name, i, len(variant.Fields)),
					Type: typ,
					Docs: trimDocs(field.Docs),
				})
			}
			decl.Variants = append(decl.Variants, v)
		}
		return decl, nil
	}

	fields := t.Def.Fields
	if len(fields) == 1 && fields[0].Name == "" && !r.containsByValue(fields[0].Type, t.ID, make(map[uint32]bool)) {
		alias, err := r.localType(fields[0].Type)
		if err != nil {
			return decl, err
		}
		decl.Kind = declAlias
		decl.Alias = alias
		return decl, nil
	}

	decl.Kind = declStruct
	for i, field := range fields {
		typ, err := r.fieldType(t.ID, field.Type, true)
		if err != nil {
			return decl, err
		}
		decl.Fields = append(decl.Fields, fieldDecl{
			Name: structFieldName(field.Name, i),
			Type: typ,
			Docs: trimDocs(field.Docs),
		})
	}
	return decl, nil
}

func structFieldName(name string, position int) string {
	if name == "" {
		return "Field" + strconv.Itoa(position)
	}
	return exportedName(name)
}

// variantFieldName names the fields of a variant As<Variant> when it has
// a single unnamed field, As<Variant><Field> for named fields and
// As<Variant>Field<i> otherwise.
func variantFieldName(variant, field string, position, count int) string {
	switch {
	case field != "":
		return "As" + variant + exportedName(field)
	case count == 1:
		return "As" + variant
	default:
		return "As" + variant + "Field" + strconv.Itoa(position)
	}
}

// trimDocs strips the leading space rustdoc leaves on each line.
func trimDocs(docs []string) []string {
	var trimmed []string
	for _, line := range docs {
		trimmed = append(trimmed, strings.TrimRight(strings.TrimPrefix(line, " "), " "))
	}
	for len(trimmed) > 0 && trimmed[len(trimmed)-1] == "" {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return trimmed
}
