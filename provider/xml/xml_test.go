// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package xml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/provider/xml"
)

func TestXML_Load(t *testing.T) {
	t.Parallel()

	loader := xml.New([]byte(`
	    <config>
	        <server host="example.com">
	            <port>8080</port>
	        </server>
	        <peers>
	            <peer>alpha</peer>
	            <peer>beta</peer>
	        </peers>
	    </config>
	`))
	assert.Equal(t, "xml", loader.String())

	config := hierconf.New()
	require.NoError(t, config.Load(loader))

	get := func(key string) any {
		value, _ := config.Get(key)

		return value
	}
	assert.Equal(t, "8080", get("server.port"))
	assert.Equal(t, "example.com", get("server.@host"))
	assert.Equal(t, []any{"alpha", "beta"}, get("peers.peer"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		document    string
		assert      func(*testing.T, *hierconf.Node)
		err         string
	}{
		{
			description: "document element becomes the root",
			document:    `<config><key>value</key></config>`,
			assert: func(t *testing.T, root *hierconf.Node) {
				t.Helper()

				assert.Equal(t, "config", root.Name())
				require.Len(t, root.Children(), 1)
				assert.Equal(t, "value", root.Children()[0].Value())
			},
		},
		{
			description: "attributes",
			document:    `<config><server host="example.com"/></config>`,
			assert: func(t *testing.T, root *hierconf.Node) {
				t.Helper()

				host, ok := root.Children()[0].Attribute("host")
				require.True(t, ok)
				assert.Equal(t, "example.com", host)
			},
		},
		{
			description: "repeated elements keep document order",
			document:    `<config><peer>alpha</peer><peer>beta</peer></config>`,
			assert: func(t *testing.T, root *hierconf.Node) {
				t.Helper()

				peers := root.ChildrenNamed("peer")
				require.Len(t, peers, 2)
				assert.Equal(t, "alpha", peers[0].Value())
				assert.Equal(t, "beta", peers[1].Value())
			},
		},
		{
			description: "surrounding whitespace is trimmed",
			document:    "<config><key>\n\t  value  \n</key></config>",
			assert: func(t *testing.T, root *hierconf.Node) {
				t.Helper()

				assert.Equal(t, "value", root.Children()[0].Value())
			},
		},
		{
			description: "empty document",
			document:    ``,
			assert: func(t *testing.T, root *hierconf.Node) {
				t.Helper()

				assert.Empty(t, root.Children())
			},
		},
		{
			description: "malformed document",
			document:    `<config><key></config>`,
			err:         "parse xml:",
		},
	}

	for _, testcase := range testcases {
		testcase := testcase
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			root, err := xml.Parse([]byte(testcase.document))
			if testcase.err != "" {
				assert.ErrorContains(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			testcase.assert(t, root)
		})
	}
}
