// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fs_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/provider/fs"
	"github.com/hierconf/hierconf/provider/yaml"
)

func TestFS_Load(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"config.xml": {
			Data: []byte(`<config><server><port>8080</port></server></config>`),
		},
		"config.yaml": {
			Data: []byte("server:\n  port: 8080"),
		},
		"config.json": {
			Data: []byte(`{"server": {"port": 8080}}`),
		},
		"config.properties": {
			Data: []byte("server.port = 8080"),
		},
		"broken.xml": {
			Data: []byte(`<config><key></config>`),
		},
	}

	testcases := []struct {
		description string
		path        string
		opts        []fs.Option
		value       any
		err         string
	}{
		{
			description: "xml file",
			path:        "config.xml",
			value:       "8080",
		},
		{
			description: "yaml file",
			path:        "config.yaml",
			value:       8080,
		},
		{
			description: "json file",
			path:        "config.json",
			value:       float64(8080),
		},
		{
			description: "properties file",
			path:        "config.properties",
			value:       "8080",
		},
		{
			description: "with parser",
			path:        "config.xml",
			opts:        []fs.Option{fs.WithParser(yaml.Parse)},
			err:         "parse config.xml:",
		},
		{
			description: "file not exist",
			path:        "absent.xml",
			err:         "read file:",
		},
		{
			description: "unparsable file",
			path:        "broken.xml",
			err:         "parse broken.xml:",
		},
	}

	for _, testcase := range testcases {
		testcase := testcase
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			config := hierconf.New()
			err := config.Load(fs.New(mapFS, testcase.path, testcase.opts...))
			if testcase.err != "" {
				assert.ErrorContains(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			value, _ := config.Get("server.port")
			assert.Equal(t, testcase.value, value)
		})
	}
}

func TestFS_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fs:///config.xml", fs.New(fstest.MapFS{}, "config.xml").String())
}
