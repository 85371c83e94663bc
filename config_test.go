// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierconf/hierconf"
)

func TestConfig_Load(t *testing.T) {
	t.Parallel()

	t.Run("nil loader", func(t *testing.T) {
		t.Parallel()

		config := hierconf.New()
		assert.EqualError(t, config.Load(nil), "cannot load config from nil loader")
	})

	t.Run("loader error", func(t *testing.T) {
		t.Parallel()

		config := hierconf.New()
		assert.EqualError(t, config.Load(errorLoader{}), "load configuration: load error")
	})

	t.Run("later loader wins", func(t *testing.T) {
		t.Parallel()

		config := hierconf.New()
		require.NoError(t, config.Load(treeLoader{tree: leaf("server", "host", "example.com")}))
		require.NoError(t, config.Load(treeLoader{tree: leaf("server", "host", "example.org")}))

		assert.Equal(t, "example.org", config.String("server.host"))
	})

	t.Run("distinct keys merge", func(t *testing.T) {
		t.Parallel()

		config := hierconf.New()
		require.NoError(t, config.Load(treeLoader{tree: leaf("server", "host", "example.com")}))
		require.NoError(t, config.Load(treeLoader{tree: leaf("server", "port", "8080")}))

		assert.Equal(t, "example.com", config.String("server.host"))
		assert.Equal(t, "8080", config.String("server.port"))
	})

	t.Run("keeps earlier mutations", func(t *testing.T) {
		t.Parallel()

		config := hierconf.New()
		require.NoError(t, config.Load(treeLoader{tree: leaf("server", "host", "example.com")}))
		config.SetProperty("server.port", "8080")
		require.NoError(t, config.Load(treeLoader{tree: leaf("client", "host", "example.org")}))

		assert.Equal(t, "8080", config.String("server.port"))
		assert.Equal(t, "example.com", config.String("server.host"))
		assert.Equal(t, "example.org", config.String("client.host"))
	})
}

func TestConfig_Get(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		key         string
		expected    any
		found       bool
	}{
		{
			description: "leaf value",
			key:         "server.host",
			expected:    "example.com",
			found:       true,
		},
		{
			description: "attribute value",
			key:         "server.@tls",
			expected:    "on",
			found:       true,
		},
		{
			description: "inner node as map",
			key:         "server",
			expected: map[string]any{
				"tls":  "on",
				"host": "example.com",
			},
			found: true,
		},
		{
			description: "repeated children as list",
			key:         "peers.peer",
			expected:    []any{"a", "b"},
			found:       true,
		},
		{
			description: "absent key",
			key:         "absent",
			expected:    nil,
			found:       false,
		},
		{
			description: "absent attribute",
			key:         "server.@absent",
			expected:    nil,
			found:       false,
		},
	}

	for _, testcase := range testcases {
		testcase := testcase

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			config := hierconf.New()
			require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

			value, found := config.Get(testcase.key)
			assert.Equal(t, testcase.found, found)
			assert.Equal(t, testcase.expected, value)
		})
	}
}

func TestConfig_MaxIndex(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	assert.Equal(t, -1, config.MaxIndex("absent"))
	assert.Equal(t, 0, config.MaxIndex("server.host"))
	assert.Equal(t, 1, config.MaxIndex("peers.peer"))
}

func TestConfig_SubAt(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	t.Run("unique key", func(t *testing.T) {
		t.Parallel()

		sub, err := config.SubAt("server")
		require.NoError(t, err)
		assert.Equal(t, "server", sub.Root().Name())
		assert.Equal(t, "example.com", sub.String("host"))
		assert.Equal(t, "on", sub.String("tls"))
	})

	t.Run("empty key designates root", func(t *testing.T) {
		t.Parallel()

		sub, err := config.SubAt("")
		require.NoError(t, err)
		assert.Equal(t, "", sub.Root().Name())
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, err := config.SubAt("absent")
		assert.ErrorIs(t, err, hierconf.ErrNotFound)
	})

	t.Run("ambiguous key", func(t *testing.T) {
		t.Parallel()

		_, err := config.SubAt("peers.peer")
		assert.ErrorIs(t, err, hierconf.ErrAmbiguous)
	})
}

func TestConfig_Unmarshal(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		opts        []hierconf.Option
		path        string
		assert      func(*testing.T, *hierconf.Config)
	}{
		{
			description: "empty values",
			assert: func(t *testing.T, config *hierconf.Config) {
				t.Helper()

				var value string
				assert.NoError(t, config.Unmarshal("absent", &value))
				assert.Equal(t, "", value)
			},
		},
		{
			description: "for struct with weak typing",
			assert: func(t *testing.T, config *hierconf.Config) {
				t.Helper()

				var value struct {
					Host string
					Tls  string
				}
				assert.NoError(t, config.Unmarshal("server", &value))
				assert.Equal(t, "example.com", value.Host)
				assert.Equal(t, "on", value.Tls)
			},
		},
		{
			description: "customized delimiter",
			opts: []hierconf.Option{
				hierconf.WithDelimiter("/"),
			},
			assert: func(t *testing.T, config *hierconf.Config) {
				t.Helper()

				var value string
				assert.NoError(t, config.Unmarshal("server/host", &value))
				assert.Equal(t, "example.com", value)
			},
		},
	}

	for _, testcase := range testcases {
		testcase := testcase

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			config := hierconf.New(testcase.opts...)
			require.NoError(t, config.Load(treeLoader{tree: serversTree()}))
			testcase.assert(t, config)
		})
	}
}

func TestConfig_SetProperty(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	var events []hierconf.Event
	config.OnChange(func(event hierconf.Event) { events = append(events, event) })

	config.SetProperty("server.host", "example.org")

	assert.Equal(t, "example.org", config.String("server.host"))
	require.Len(t, events, 2)
	assert.True(t, events[0].BeforeUpdate())
	assert.False(t, events[1].BeforeUpdate())
	for _, event := range events {
		assert.Equal(t, hierconf.EventSetProperty, event.Type())
		assert.Equal(t, "server.host", event.PropertyName())
		assert.Equal(t, "example.org", event.PropertyValue())
		assert.Same(t, config, event.Source())
	}
}

func TestConfig_SetProperty_creates_path(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	config.SetProperty("server.host", "example.com")
	config.SetProperty("server.@tls", "off")

	assert.Equal(t, "example.com", config.String("server.host"))
	assert.Equal(t, "off", config.String("server.@tls"))
}

func TestConfig_AddProperty(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	var events []hierconf.Event
	config.OnChange(func(event hierconf.Event) { events = append(events, event) }, hierconf.EventAddProperty)

	config.AddProperty("peers.peer", "c")

	value, found := config.Get("peers.peer")
	assert.True(t, found)
	assert.Equal(t, []any{"a", "b", "c"}, value)
	require.Len(t, events, 2)
	assert.Equal(t, hierconf.EventAddProperty, events[0].Type())
}

func TestConfig_ClearProperty(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	config.ClearProperty("peers.peer")

	_, found := config.Get("peers.peer")
	assert.False(t, found)
}

func TestConfig_Clear(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	require.NoError(t, config.Load(treeLoader{tree: serversTree()}))

	var events []hierconf.Event
	config.OnChange(func(event hierconf.Event) { events = append(events, event) }, hierconf.EventClear)

	config.Clear()

	_, found := config.Get("server.host")
	assert.False(t, found)
	require.Len(t, events, 2)
	assert.Equal(t, "", events[0].PropertyName())
}

func TestConfig_OnChange_type_filter(t *testing.T) {
	t.Parallel()

	config := hierconf.New()

	var events []hierconf.Event
	config.OnChange(func(event hierconf.Event) { events = append(events, event) }, hierconf.EventClearProperty)

	config.SetProperty("server.host", "example.com")
	config.ClearProperty("server.host")

	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, hierconf.EventClearProperty, event.Type())
	}
}

func TestConfig_OnChange_nil_panics(t *testing.T) {
	t.Parallel()

	config := hierconf.New()
	assert.PanicsWithValue(t, "cannot register nil onChange", func() {
		config.OnChange(nil)
	})
}

// serversTree builds the tree
//
//	<config>
//	    <server tls="on"><host>example.com</host></server>
//	    <peers><peer>a</peer><peer>b</peer></peers>
//	</config>
func serversTree() *hierconf.Node {
	root := hierconf.NewNode("")

	server := hierconf.NewNode("server")
	server.SetAttribute("tls", "on")
	host := hierconf.NewNode("host")
	host.SetValue("example.com")
	server.AppendChild(host)
	root.AppendChild(server)

	peers := hierconf.NewNode("peers")
	for _, name := range []string{"a", "b"} {
		peer := hierconf.NewNode("peer")
		peer.SetValue(name)
		peers.AppendChild(peer)
	}
	root.AppendChild(peers)

	return root
}

// leaf builds a tree with a single parent.child leaf carrying value.
func leaf(parent, child string, value any) *hierconf.Node {
	root := hierconf.NewNode("")
	parentNode := hierconf.NewNode(parent)
	childNode := hierconf.NewNode(child)
	childNode.SetValue(value)
	parentNode.AppendChild(childNode)
	root.AppendChild(parentNode)

	return root
}

type treeLoader struct {
	tree *hierconf.Node
}

func (l treeLoader) Load() (*hierconf.Node, error) { return l.tree, nil }

func (l treeLoader) String() string { return "tree" }

type errorLoader struct{}

func (errorLoader) Load() (*hierconf.Node, error) { return nil, errors.New("load error") }
