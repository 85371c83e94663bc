// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierconf/hierconf"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	testcases := []struct {
		description string
		value       any
		expected    any
	}{
		{
			description: "non-string passes through",
			value:       42,
			expected:    42,
		},
		{
			description: "string without reference passes through",
			value:       "plain",
			expected:    "plain",
		},
		{
			description: "whole reference preserves type",
			value:       "${peers.peer}",
			expected:    []any{"a", "b"},
		},
		{
			description: "embedded reference",
			value:       "http://${server.host}/",
			expected:    "http://example.com/",
		},
		{
			description: "multiple references",
			value:       "${server.host}:${server.@tls}",
			expected:    "example.com:on",
		},
		{
			description: "unresolvable reference stays verbatim",
			value:       "${absent.key}",
			expected:    "${absent.key}",
		},
		{
			description: "unterminated reference stays verbatim",
			value:       "${server.host",
			expected:    "${server.host",
		},
	}

	for _, testcase := range testcases {
		testcase := testcase

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testcase.expected, hierconf.Interpolate(testcase.value, config))
		})
	}
}

func TestInterpolate_nil_resolver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "${key}", hierconf.Interpolate("${key}", nil))
}
