// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options          []Option
		expectedSettings settings
	}{
		"no option": {
			expectedSettings: settings{
				writer: os.Stdout,
				level:  levelPtr(Info),
				format: formatPtr(FormatConsole),
			},
		},
		"all options": {
			options: []Option{
				SetLevel(Trace),
				SetFormat(FormatColoured),
				SetWriter(io.Discard),
				AddContext("key1", "value1"),
				AddContext("key1", "value2"),
			},
			expectedSettings: settings{
				writer: io.Discard,
				level:  levelPtr(Trace),
				format: formatPtr(FormatColoured),
				context: []contextKeyValues{
					{key: "key1", values: []string{"value1", "value2"}},
				},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger := New(testCase.options...)

			assert.Equal(t, testCase.expectedSettings, logger.settings)
			assert.NotNil(t, logger.mutex)
		})
	}
}

func Test_Logger_New(t *testing.T) {
	t.Parallel()

	parent := New(
		SetWriter(io.Discard),
		SetFormat(FormatColoured),
		AddContext("key1", "value1"),
	)

	child := parent.New(
		SetLevel(Trace),
		AddContext("key1", "value1.2"),
		AddContext("key2", "value2"),
	)

	expected := settings{
		writer: io.Discard,
		level:  levelPtr(Trace),
		format: formatPtr(FormatColoured),
		context: []contextKeyValues{
			{key: "key1", values: []string{"value1", "value1.2"}},
			{key: "key2", values: []string{"value2"}},
		},
	}
	assert.Equal(t, expected, child.settings)
	assert.Same(t, parent.mutex, child.mutex)
	require.Len(t, parent.childs, 1)
}

func Test_Logger_Patch(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	parent := New(SetWriter(buffer), SetLevel(Info))
	child := parent.New(AddContext("pkg", "test"))

	child.Debug("hidden")
	assert.Empty(t, buffer.String())

	parent.PatchLevel(Debug)
	child.Debug("shown")

	assert.Contains(t, buffer.String(), "DEBUG    shown\tpkg=test")
}
