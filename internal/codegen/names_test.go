// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_exportedName(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"transfer_keep_alive": "TransferKeepAlive",
		"remark":              "Remark",
		"ExtrinsicSuccess":    "ExtrinsicSuccess",
		"AccountId32":         "AccountId32",
		"ref_time":            "RefTime",
		"weight_v2":           "WeightV2",
		"u32":                 "U32",
		"":                    "X",
	}

	for in, expected := range testCases {
		in, expected := in, expected
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, expected, exportedName(in))
		})
	}
}

func Test_paramName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dest", paramName("Dest"))
	assert.Equal(t, "keepAlive", paramName("KeepAlive"))
	assert.Equal(t, "typeArg", paramName("type"))
	assert.Equal(t, "value", paramName("Value"))
	assert.Equal(t, "txArg", paramName("tx"))
	assert.Equal(t, "ctxArg", paramName("ctx"))
}

func Test_packageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "balances", packageName("Balances"))
	assert.Equal(t, "xcmpallet", packageName("XcmPallet"))
	assert.Equal(t, "storagepallet", packageName("Storage"))
}
