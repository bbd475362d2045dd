// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codegen

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// exportedName turns a snake_case or CamelCase runtime identifier into an
// exported Go identifier.
func exportedName(name string) string {
	// casers keep state, so one is made per call
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, word := range strings.FieldsFunc(name, isSeparator) {
		b.WriteString(caser.String(word))
	}

	s := b.String()
	if s == "" {
		return "X"
	}
	if unicode.IsDigit(rune(s[0])) {
		return "X" + s
	}
	return s
}

// paramName returns an unexported Go identifier for name, usable as a
// function parameter in the generated files.
func paramName(name string) string {
	exported := exportedName(name)
	s := strings.ToLower(exported[:1]) + exported[1:]
	if token.IsKeyword(s) || reservedParams[s] {
		return s + "Arg"
	}
	return s
}

// reservedParams are identifiers used by the generated code itself.
var reservedParams = map[string]bool{
	"a":            true,
	"ctx":          true,
	"types":        true,
	"tx":           true,
	"storage":      true,
	"constants":    true,
	"runtimetypes": true,
}

// packageName returns the Go package name of a pallet.
func packageName(pallet string) string {
	name := strings.ToLower(exportedName(pallet))
	if importedPackages[name] {
		return name + "pallet"
	}
	return name
}

// importedPackages are the package names the generated files import.
var importedPackages = map[string]bool{
	"context":      true,
	"errors":       true,
	"fmt":          true,
	"constants":    true,
	"events":       true,
	"metadata":     true,
	"scale":        true,
	"storage":      true,
	"tx":           true,
	"types":        true,
	"runtimetypes": true,
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == ':'
}
