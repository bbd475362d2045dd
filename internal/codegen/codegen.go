// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package codegen generates typed Go bindings for the pallets of a runtime
// from its metadata.
package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"golang.org/x/tools/imports"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "codegen"))

const (
	// typesPackage is the package holding the runtime types.
	typesPackage = "runtimetypes"
	// metadataFile is the metadata embedded in the root package.
	metadataFile = "metadata.scale"
)

var (
	ErrNoModulePath = errors.New("module path is required")
	ErrNoPallets    = errors.New("no pallets to generate")
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"comment":  comment,
	"quote":    strconv.Quote,
	"exported": exportedName,
	"params":   params,
	"hashers":  hashers,
	"keyArgs":  keyArgs,
	"join":     strings.Join,
}).ParseFS(templateFS, "templates/*.tmpl"))

// Options configures the generated bindings.
type Options struct {
	// ModulePath is the import path of the generated root package.
	ModulePath string
	// Package is the name of the root package. It defaults to the last
	// element of ModulePath.
	Package string
	// Pallets restricts the bindings to the named pallets. All pallets
	// are generated when empty.
	Pallets []string
}

// Files maps the slash separated path of each generated file, relative
// to the root package directory, to its content.
type Files map[string][]byte

// Names returns the sorted file paths.
func (f Files) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write writes the files under dir, creating the package directories.
func (f Files) Write(dir string) error {
	for _, name := range f.Names() {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if err := os.WriteFile(target, f[name], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		logger.Debugf("wrote %s", target)
	}
	return nil
}

type generator struct {
	md    *metadata.Metadata
	opts  Options
	types *resolver
	files Files
}

// Generate generates the bindings of the runtime described by md: the
// runtimetypes package, one package per pallet and the root package
// aggregating them, which embeds the metadata trimmed to the pallets.
func Generate(md *metadata.Metadata, opts Options) (Files, error) {
	if opts.ModulePath == "" {
		return nil, ErrNoModulePath
	}
	opts.ModulePath = strings.TrimSuffix(opts.ModulePath, "/")
	if opts.Package == "" {
		opts.Package = packageName(path.Base(opts.ModulePath))
	}

	selected, err := selectPallets(md, opts.Pallets)
	if err != nil {
		return nil, err
	}

	rootTypes, err := roots(md.Types, selected)
	if err != nil {
		return nil, err
	}
	types, err := newResolver(md.Types, rootTypes)
	if err != nil {
		return nil, err
	}

	g := &generator{md: md, opts: opts, types: types, files: make(Files)}

	decls, err := types.decls()
	if err != nil {
		return nil, err
	}
	if err = g.render(typesPackage+"/types.go", "runtimetypes.go.tmpl", decls); err != nil {
		return nil, err
	}

	root := rootModel{Package: opts.Package, ImportPath: opts.ModulePath}
	for _, pallet := range selected {
		model, err := g.palletModel(pallet)
		if err != nil {
			return nil, err
		}
		if err = g.renderPallet(model); err != nil {
			return nil, err
		}
		root.Pallets = append(root.Pallets, model)
	}
	if err = g.render("api.go", "api.go.tmpl", root); err != nil {
		return nil, err
	}

	if g.files[metadataFile], err = retainedMetadata(md, selected); err != nil {
		return nil, err
	}

	logger.Infof("generated %d files for %d pallets and %d types", len(g.files), len(selected), len(decls))
	return g.files, nil
}

func selectPallets(md *metadata.Metadata, names []string) ([]*metadata.Pallet, error) {
	if len(names) == 0 {
		if len(md.Pallets) == 0 {
			return nil, ErrNoPallets
		}
		return md.Pallets, nil
	}

	selected := make([]*metadata.Pallet, 0, len(names))
	for _, name := range names {
		pallet, err := md.Pallet(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, pallet)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Index < selected[j].Index })
	return selected, nil
}

// retainedMetadata encodes a copy of md trimmed to the pallets.
func retainedMetadata(md *metadata.Metadata, pallets []*metadata.Pallet) ([]byte, error) {
	encoded, err := md.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	trimmed, err := metadata.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("copying metadata: %w", err)
	}

	names := make([]string, len(pallets))
	for i, pallet := range pallets {
		names[i] = pallet.Name
	}
	trimmed.Retain(names, []string{})
	return trimmed.Encode()
}

func (g *generator) renderPallet(model palletModel) error {
	parts := []struct {
		file     string
		template string
		present  bool
	}{
		{"calls.go", "calls.go.tmpl", len(model.Calls) > 0},
		{"events.go", "events.go.tmpl", len(model.Events) > 0},
		{"storage.go", "storage.go.tmpl", len(model.Storage) > 0},
		{"constants.go", "constants.go.tmpl", len(model.Constants) > 0},
	}

	rendered := 0
	for _, part := range parts {
		if !part.present {
			continue
		}
		if err := g.render(model.Package+"/"+part.file, part.template, model); err != nil {
			return err
		}
		rendered++
	}
	if rendered == 0 {
		// keep the package importable by the root package
		return g.render(model.Package+"/doc.go", "doc.go.tmpl", model)
	}
	return nil
}

// render executes the template and formats the output, dropping the
// imports the file does not use.
func (g *generator) render(name, templateName string, data interface{}) error {
	var buffer bytes.Buffer
	if err := templates.ExecuteTemplate(&buffer, templateName, data); err != nil {
		return fmt.Errorf("executing %s for %s: %w", templateName, name, err)
	}

	formatted, err := imports.Process(name, buffer.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("formatting %s: %w", name, err)
	}
	g.files[name] = formatted
	return nil
}

// comment renders a doc comment starting with the identifier and the
// summary, followed by the runtime docs.
func comment(identifier, summary string, docs []string) string {
	lines := []string{"// " + identifier + " " + summary}
	if len(docs) > 0 {
		lines = append(lines, "//")
		for _, line := range docs {
			lines = append(lines, strings.TrimRight("// "+line, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// params renders the parameter list of a call method.
func params(fields []fieldDecl) string {
	list := make([]string, len(fields))
	for i, field := range fields {
		list[i] = field.Param + " " + field.Type
	}
	return strings.Join(list, ", ")
}

// hashers renders the hasher slice of a storage address.
func hashers(names []string) string {
	if len(names) == 0 {
		return "nil"
	}
	return "[]storage.Hasher{" + strings.Join(names, ", ") + "}"
}

// keyArgs renders the key arguments passed to an address constructor.
func keyArgs(keys []fieldDecl) string {
	list := make([]string, len(keys))
	for i, key := range keys {
		list[i] = key.Param
	}
	return strings.Join(list, ", ")
}
