// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

// DevPhrase is the phrase the development accounts derive from.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

var ErrInvalidURI = errors.New("invalid secret uri")

var secretURIPattern = regexp.MustCompile(`^([^/]*)((?:/{1,2}[^/]+)*)(?:///(.*))?$`)

var junctionPattern = regexp.MustCompile(`/{1,2}[^/]+`)

// Junction is a step of a derivation path.
type Junction struct {
	ChainCode [32]byte
	Hard      bool

	name string
}

// NewJunction returns the junction for a path element. Numeric elements
// are encoded as u64, other elements as SCALE strings, hashed when longer
// than 32 bytes.
func NewJunction(element string, hard bool) (Junction, error) {
	junction := Junction{Hard: hard, name: element}

	if n, err := strconv.ParseUint(element, 10, 64); err == nil {
		binary.LittleEndian.PutUint64(junction.ChainCode[:], n)
		return junction, nil
	}

	encoded, err := types.Encode(element)
	if err != nil {
		return Junction{}, fmt.Errorf("encoding junction %q: %w", element, err)
	}
	if len(encoded) > len(junction.ChainCode) {
		junction.ChainCode = common.Blake2bHash(encoded)
	} else {
		copy(junction.ChainCode[:], encoded)
	}
	return junction, nil
}

func (j Junction) String() string {
	if j.Hard {
		return "//" + j.name
	}
	return "/" + j.name
}

// SecretURI is a parsed secret uri: a phrase or hex seed, derivation
// junctions and an optional password.
type SecretURI struct {
	Phrase    string
	Junctions []Junction
	Password  string
}

// ParseSecretURI parses `phrase/soft//hard///password`. A uri starting with
// a junction derives from DevPhrase.
func ParseSecretURI(uri string) (SecretURI, error) {
	matches := secretURIPattern.FindStringSubmatch(uri)
	if matches == nil {
		return SecretURI{}, fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}

	parsed := SecretURI{
		Phrase:   strings.TrimSpace(matches[1]),
		Password: matches[3],
	}
	if parsed.Phrase == "" {
		parsed.Phrase = DevPhrase
	}

	for _, element := range junctionPattern.FindAllString(matches[2], -1) {
		hard := strings.HasPrefix(element, "//")
		junction, err := NewJunction(strings.TrimLeft(element, "/"), hard)
		if err != nil {
			return SecretURI{}, err
		}
		parsed.Junctions = append(parsed.Junctions, junction)
	}
	return parsed, nil
}

// NewKeypairFromURI returns the keypair of a secret uri, such as
// `//Alice`, a phrase with a path or a 0x prefixed seed.
func NewKeypairFromURI(uri string) (*Keypair, error) {
	parsed, err := ParseSecretURI(uri)
	if err != nil {
		return nil, err
	}

	var root *Keypair
	if strings.HasPrefix(parsed.Phrase, "0x") {
		seed, err := common.HexToBytes(parsed.Phrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidURI, err)
		}
		root, err = NewKeypairFromSeed(seed)
		if err != nil {
			return nil, err
		}
	} else {
		root, err = NewKeypairFromMnemonic(parsed.Phrase, parsed.Password)
		if err != nil {
			return nil, err
		}
	}

	if len(parsed.Junctions) == 0 {
		return root, nil
	}
	return root.Derive(parsed.Junctions)
}
