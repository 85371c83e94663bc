// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/provider/json"
	"github.com/hierconf/hierconf/provider/properties"
	"github.com/hierconf/hierconf/provider/xml"
	"github.com/hierconf/hierconf/provider/yaml"
)

// WithParser provides the function that parses the file content into a
// node tree.
//
// The default parser is chosen by the file extension.
func WithParser(parser func([]byte) (*hierconf.Node, error)) Option {
	return func(options *options) {
		options.parser = parser
	}
}

// IgnoreFileNotExist ignores the error and returns an empty tree
// if the file does not exist.
func IgnoreFileNotExist() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for logging.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a File with specific options.
	Option  func(*options)
	options File
)

func parserFor(path string) func([]byte) (*hierconf.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parse
	case ".json":
		return json.Parse
	case ".properties":
		return properties.Parse
	default:
		return xml.Parse
	}
}
