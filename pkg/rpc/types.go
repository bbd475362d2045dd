// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
)

var (
	ErrUnknownStatus = errors.New("unknown extrinsic status")
	ErrInvalidNumber = errors.New("invalid block number")
)

// HexBytes is a byte slice encoded as a 0x prefixed hex string in JSON.
type HexBytes []byte

// MarshalJSON implements json.Marshaler.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(common.BytesToHex(h))
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := common.HexToBytes(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

// BlockNumber is a block number, hex encoded in JSON.
type BlockNumber uint32

// MarshalJSON implements json.Marshaler.
func (n BlockNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%x", uint32(n)))
}

// UnmarshalJSON accepts hex strings and plain numbers.
func (n *BlockNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var number uint32
		if numberErr := json.Unmarshal(data, &number); numberErr != nil {
			return fmt.Errorf("%w: %s", ErrInvalidNumber, data)
		}
		*n = BlockNumber(number)
		return nil
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumber, err)
	}
	*n = BlockNumber(v)
	return nil
}

// RuntimeAPIVersion is a runtime API id with its version.
type RuntimeAPIVersion struct {
	ID      string
	Version uint32
}

// UnmarshalJSON decodes the [id, version] tuple form.
func (v *RuntimeAPIVersion) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("runtime api version: expected 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &v.ID); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &v.Version)
}

// MarshalJSON encodes the [id, version] tuple form.
func (v RuntimeAPIVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{v.ID, v.Version})
}

// RuntimeVersion is the result of state_getRuntimeVersion.
type RuntimeVersion struct {
	SpecName           string              `json:"specName"`
	ImplName           string              `json:"implName"`
	AuthoringVersion   uint32              `json:"authoringVersion"`
	SpecVersion        uint32              `json:"specVersion"`
	ImplVersion        uint32              `json:"implVersion"`
	TransactionVersion uint32              `json:"transactionVersion"`
	StateVersion       uint8               `json:"stateVersion"`
	APIs               []RuntimeAPIVersion `json:"apis"`
}

// Digest holds the hex encoded digest logs of a header.
type Digest struct {
	Logs []HexBytes `json:"logs"`
}

// Header is a block header.
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         BlockNumber `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// Block is a block with its SCALE encoded extrinsics.
type Block struct {
	Header     Header     `json:"header"`
	Extrinsics []HexBytes `json:"extrinsics"`
}

// SignedBlock is the result of chain_getBlock.
type SignedBlock struct {
	Block          Block           `json:"block"`
	Justifications json.RawMessage `json:"justifications"`
}

// StorageChange is a key with its value, nil when the key is absent.
type StorageChange struct {
	Key   HexBytes
	Value *HexBytes
}

// UnmarshalJSON decodes the [key, value] tuple form.
func (c *StorageChange) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("storage change: expected 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &c.Key); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &c.Value)
}

// MarshalJSON encodes the [key, value] tuple form.
func (c StorageChange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Key, c.Value})
}

// StorageChangeSet is an element of the state_queryStorageAt result.
type StorageChangeSet struct {
	Block   common.Hash     `json:"block"`
	Changes []StorageChange `json:"changes"`
}

// StatusKind is the kind of a transaction pool status notification.
type StatusKind uint8

// Extrinsic status kinds.
const (
	StatusFuture StatusKind = iota
	StatusReady
	StatusBroadcast
	StatusInBlock
	StatusRetracted
	StatusFinalityTimeout
	StatusFinalized
	StatusUsurped
	StatusDropped
	StatusInvalid
)

var statusNames = [...]string{
	"future", "ready", "broadcast", "inBlock", "retracted",
	"finalityTimeout", "finalized", "usurped", "dropped", "invalid",
}

func (k StatusKind) String() string {
	if int(k) < len(statusNames) {
		return statusNames[k]
	}
	return "unknown"
}

// ExtrinsicStatus is a notification of author_submitAndWatchExtrinsic.
// Hash is set for the inBlock, retracted, finalityTimeout, finalized and
// usurped kinds, Peers for broadcast.
type ExtrinsicStatus struct {
	Kind  StatusKind
	Hash  common.Hash
	Peers []string
}

// IsFinal returns true when no further notification follows.
func (s ExtrinsicStatus) IsFinal() bool {
	switch s.Kind {
	case StatusFinalized, StatusFinalityTimeout, StatusUsurped, StatusDropped, StatusInvalid:
		return true
	default:
		return false
	}
}

func (s ExtrinsicStatus) String() string {
	switch s.Kind {
	case StatusInBlock, StatusRetracted, StatusFinalityTimeout, StatusFinalized, StatusUsurped:
		return s.Kind.String() + " " + s.Hash.String()
	case StatusBroadcast:
		return fmt.Sprintf("%s to %d peers", s.Kind, len(s.Peers))
	default:
		return s.Kind.String()
	}
}

func statusKind(name string) (StatusKind, bool) {
	for i, statusName := range statusNames {
		if statusName == name {
			return StatusKind(i), true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes either a plain status string or a single key
// object carrying the status data.
func (s *ExtrinsicStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		kind, ok := statusKind(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStatus, name)
		}
		*s = ExtrinsicStatus{Kind: kind}
		return nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, data)
	}
	if len(object) != 1 {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, data)
	}

	for name, raw := range object {
		kind, ok := statusKind(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStatus, name)
		}
		*s = ExtrinsicStatus{Kind: kind}
		switch kind {
		case StatusBroadcast:
			return json.Unmarshal(raw, &s.Peers)
		case StatusInBlock, StatusRetracted, StatusFinalityTimeout, StatusFinalized, StatusUsurped:
			return json.Unmarshal(raw, &s.Hash)
		}
	}
	return nil
}

// MarshalJSON encodes the status in the node's format.
func (s ExtrinsicStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatusBroadcast:
		return json.Marshal(map[string]interface{}{s.Kind.String(): s.Peers})
	case StatusInBlock, StatusRetracted, StatusFinalityTimeout, StatusFinalized, StatusUsurped:
		return json.Marshal(map[string]interface{}{s.Kind.String(): s.Hash})
	default:
		return json.Marshal(s.Kind.String())
	}
}
