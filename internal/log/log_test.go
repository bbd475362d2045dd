// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		level       Level
		context     []contextKeyValues
		logLevel    Level
		s           string
		args        []interface{}
		outputRegex string
	}{
		"log_at_trace": {
			level:       Trace,
			logLevel:    Trace,
			s:           "some words",
			outputRegex: timePrefixRegex + "TRACE    some words\n$",
		},
		"do_not_log_at_trace": {
			level:       Debug,
			logLevel:    Trace,
			s:           "some words",
			outputRegex: "^$",
		},
		"format_string": {
			level:       Trace,
			logLevel:    Info,
			s:           "some %s",
			args:        []interface{}{"words"},
			outputRegex: timePrefixRegex + "INFO     some words\n$",
		},
		"context": {
			level: Trace,
			context: []contextKeyValues{
				{key: "key1", values: []string{"a", "b"}},
				{key: "key2", values: []string{"c", "d"}},
			},
			logLevel:    Trace,
			s:           "some words",
			outputRegex: timePrefixRegex + "TRACE    some words\tkey1=a,b key2=c,d\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			logger := newTestLogger(buffer, testCase.level, testCase.context...)

			logger.log(testCase.logLevel, testCase.s, testCase.args...)

			line := buffer.String()

			regex, err := regexp.Compile(testCase.outputRegex)
			require.NoError(t, err)

			assert.True(t, regex.MatchString(line),
				"line %q does not match regex %q", line, regex.String())
		})
	}
}

func Test_Logger_log_ColouredNotTerminal(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := newTestLogger(buffer, Info)
	logger.settings.format = formatPtr(FormatColoured)

	logger.Warn("plain")

	regex := regexp.MustCompile(timePrefixRegex + "WARN     plain\n$")
	assert.True(t, regex.MatchString(buffer.String()), "line %q", buffer.String())
}

func Test_Logger_LevelsLog(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)

	logger := New(SetLevel(Trace), SetWriter(buffer))
	logger.Trace("some trace")
	logger.Debug("some debug")
	logger.Info("some info")
	logger.Warn("some warn")
	logger.Error("some error")
	logger.Critical("some critical")
	logger.Tracef("some %dnd trace", 2)
	logger.Errorf("some %dnd error", 2)

	lines := strings.Split(buffer.String(), "\n")

	// Check for trailing newline
	require.NotEmpty(t, lines)
	assert.Equal(t, "", lines[len(lines)-1])
	lines = lines[:len(lines)-1]

	expectedRegexes := []string{
		timePrefixRegex + "TRACE    some trace$",
		timePrefixRegex + "DEBUG    some debug$",
		timePrefixRegex + "INFO     some info$",
		timePrefixRegex + "WARN     some warn$",
		timePrefixRegex + "ERROR    some error$",
		timePrefixRegex + "CRITICAL some critical$",
		timePrefixRegex + "TRACE    some 2nd trace$",
		timePrefixRegex + "ERROR    some 2nd error$",
	}

	require.Equal(t, len(expectedRegexes), len(lines))

	for i := range lines {
		regex, err := regexp.Compile(expectedRegexes[i])
		require.NoError(t, err)

		assert.True(t, regex.MatchString(lines[i]),
			"line %q does not match regex %q", lines[i], expectedRegexes[i])
	}
}

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, Debug, level)

	level, err = ParseLevel("EROR")
	require.NoError(t, err)
	assert.Equal(t, Error, level)

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrLevelNotRecognised)
	assert.EqualError(t, err, "level is not recognised: loud")
}
