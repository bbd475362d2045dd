// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/value"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ErrUnsupportedExtension is returned for a signed extension that carries
// data this package does not know how to fill in.
var ErrUnsupportedExtension = errors.New("unsupported signed extension")

// extensionInputs are the values signed extensions draw from.
type extensionInputs struct {
	specVersion uint32
	txVersion   uint32
	genesisHash common.Hash
	era         Era
	// checkpoint is the hash of the block the era starts at.
	checkpoint common.Hash
	nonce      uint64
	tip        *big.Int
}

// signedExtra holds the extra bytes, included in the extrinsic, and the
// additional bytes, only signed over.
type signedExtra struct {
	extra      []byte
	additional []byte
}

func compact(v *big.Int) []byte {
	var buffer bytes.Buffer
	// writing to a bytes.Buffer does not fail
	_ = scale.NewEncoder(&buffer).EncodeUintCompact(*v)
	return buffer.Bytes()
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// buildExtra encodes the signed extensions in metadata order.
func buildExtra(md *metadata.Metadata, inputs extensionInputs) (signed signedExtra, err error) {
	tip := inputs.tip
	if tip == nil {
		tip = new(big.Int)
	}

	for _, extension := range md.Extrinsic.SignedExtensions {
		var extra, additional []byte
		switch extension.Identifier {
		case "CheckNonZeroSender", "CheckWeight", "PrevalidateAttests":
		case "CheckSpecVersion":
			additional = le32(inputs.specVersion)
		case "CheckTxVersion":
			additional = le32(inputs.txVersion)
		case "CheckGenesis":
			additional = inputs.genesisHash.ToBytes()
		case "CheckMortality", "CheckEra":
			extra = inputs.era.Encode()
			additional = inputs.checkpoint.ToBytes()
		case "CheckNonce":
			extra = compact(new(big.Int).SetUint64(inputs.nonce))
		case "ChargeTransactionPayment":
			extra = compact(tip)
		case "ChargeAssetTxPayment":
			// tip followed by a None asset id
			extra = append(compact(tip), 0)
		case "CheckMetadataHash":
			// Mode::Disabled, with no metadata hash signed
			extra = []byte{0}
			additional = []byte{0}
		default:
			if !zeroSized(md.Types, extension.Type) || !zeroSized(md.Types, extension.AdditionalSigned) {
				return signed, fmt.Errorf("%w: %s", ErrUnsupportedExtension, extension.Identifier)
			}
			logger.Debugf("signed extension %s carries no data", extension.Identifier)
		}

		signed.extra = append(signed.extra, extra...)
		signed.additional = append(signed.additional, additional...)
	}
	return signed, nil
}

// zeroSized returns true when the type encodes to no bytes.
func zeroSized(registry *metadata.Registry, typeID uint32) bool {
	n, err := value.Skip(registry, typeID, nil)
	return err == nil && n == 0
}
